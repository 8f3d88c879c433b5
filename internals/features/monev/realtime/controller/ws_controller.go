package controller

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"monevpdb_backend/internals/features/monev/realtime"
)

type wsEvent struct {
	Event string `json:"event"`
}

// UpgradeGuard menolak request non-websocket ke /ws.
func UpgradeGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

// Handler menambatkan klien ke hub dan meneruskan sinyal data_updated yang
// dikirim klien lain (dashboard admin membuka lebih dari satu perangkat).
func Handler(hub *realtime.Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		hub.Register(conn)
		defer func() {
			hub.Unregister(conn)
			_ = conn.Close()
		}()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var ev wsEvent
			if err := sonic.Unmarshal(msg, &ev); err != nil {
				continue
			}
			if ev.Event == "data_updated" {
				hub.RelayDataUpdated(conn)
			}
		}
	})
}
