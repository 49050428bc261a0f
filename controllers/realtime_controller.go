package controllers

import (
	"net/http"
	"time"

	"github.com/Lappanawat/flowmind-ranocturia/models"
	"github.com/Lappanawat/flowmind-ranocturia/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	RT  *services.RealtimeHub
	Svc *services.AnalysisService
}

func NewRealtimeController(rt *services.RealtimeHub, svc *services.AnalysisService) *RealtimeController {
	return &RealtimeController{RT: rt, Svc: svc}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

type liveTable struct {
	Rows []models.VoidingEvent `json:"rows"`
	Age  int                   `json:"age"`
}

// GET /ws/analyze?session=<id> — live re-analysis while the user edits
// the extracted table. Every table the client sends is re-computed and
// the result pushed to all sockets in the session.
func (rc *RealtimeController) AnalyzeWS(c *gin.Context) {
	session := c.Query("session")
	if session == "" {
		session = uuid.NewString()
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{SessionID: session, Conn: conn}
	rc.RT.Register(cl)

	// tell the client its session id so other tabs can join
	_ = conn.WriteJSON(gin.H{"kind": "session", "session": session})

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				rc.RT.Unregister(cl)
				return
			}
		}
	}()

	for {
		var msg liveTable
		if err := conn.ReadJSON(&msg); err != nil {
			rc.RT.Unregister(cl)
			return
		}
		out := rc.Svc.Analyze(models.VoidingDiary(msg.Rows), msg.Age)
		rc.RT.Broadcast(session, gin.H{"kind": "analysis", "result": out})
	}
}
