package realtime

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Payload tunggal kanal notifikasi: "ada perubahan data, ambil ulang".
// Tanpa isi, tanpa jaminan urutan/terkirim — penerima cukup re-fetch.
var dataUpdatedMessage = []byte(`{"event":"data_updated"}`)

// Sender diabstraksi supaya hub bisa diuji tanpa koneksi websocket asli.
type Sender interface {
	WriteMessage(messageType int, data []byte) error
}

// Hub menyimpan seluruh dashboard yang sedang terhubung. Fire-and-forget:
// kirim gagal = klien dilepas, tidak ada retry.
type Hub struct {
	mu      sync.Mutex
	clients map[Sender]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[Sender]struct{})}
}

func (h *Hub) Register(c Sender) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *Hub) Unregister(c Sender) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// BroadcastDataUpdated dipanggil setelah mutasi berhasil (submission baru,
// hapus, ganti skema/roster).
func (h *Hub) BroadcastDataUpdated() {
	h.broadcastExcept(nil)
}

// RelayDataUpdated meneruskan sinyal dari satu klien ke seluruh klien
// lain, tanpa gema balik ke pengirim.
func (h *Hub) RelayDataUpdated(from Sender) {
	h.broadcastExcept(from)
}

func (h *Hub) broadcastExcept(skip Sender) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		if c == skip {
			continue
		}
		if err := c.WriteMessage(websocket.TextMessage, dataUpdatedMessage); err != nil {
			log.Printf("[WS] gagal kirim, klien dilepas: %v", err)
			delete(h.clients, c)
		}
	}
}
