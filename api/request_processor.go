package api

import (
	"context"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saeidalz13/battleship-solo/db/sqlc"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	mc "github.com/saeidalz13/battleship-solo/models/connection"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
)

var upgrader = websocket.Upgrader{
	// good average time since this is not a high-latency operation such as video streaming
	HandshakeTimeout: time.Second * 5,

	// a full board view is a few KB at most
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type RequestProcessor struct {
	sessionManager mc.SessionManager
	gameManager    mb.GameManager
	analytics      *sqlc.AnalyticsManager
	upgrader       websocket.Upgrader
	ipnet          net.IPNet
}

type Option func(*RequestProcessor)

// WithAllowedOrigins restricts the websocket upgrade to the given
// origins. With no origins only same host requests are upgraded.
// Without this option every origin is accepted.
func WithAllowedOrigins(origins ...string) Option {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			allowed[o] = true
		}
	}

	return func(rp *RequestProcessor) {
		if len(allowed) == 0 {
			// gorilla falls back to its same origin check
			rp.upgrader.CheckOrigin = nil
			return
		}
		rp.upgrader.CheckOrigin = func(r *http.Request) bool {
			return allowed[r.Header.Get("Origin")]
		}
	}
}

func NewRequestProcessor(
	sessionManager mc.SessionManager,
	gameManager mb.GameManager,
	analytics *sqlc.AnalyticsManager,
	opts ...Option,
) RequestProcessor {
	rp := RequestProcessor{
		sessionManager: sessionManager,
		gameManager:    gameManager,
		analytics:      analytics,
		upgrader:       upgrader,
		ipnet:          serverIpNet(),
	}

	for _, opt := range opts {
		opt(&rp)
	}
	return rp
}

// serverIpNet finds the first non-loopback IPv4 address of this host. The
// analytics rows are keyed by it. Falls back to 127.0.0.1/32.
func serverIpNet() net.IPNet {
	fallback := net.IPNet{IP: net.IPv4(127, 0, 0, 1), Mask: net.CIDRMask(32, 32)}

	ifaces, err := net.Interfaces()
	if err != nil {
		log.Println("failed to list network interfaces:", err)
		return fallback
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ip := ipnet.IP.To4(); ip != nil && !ip.IsLoopback() {
				return net.IPNet{IP: ip, Mask: net.CIDRMask(32, 32)}
			}
		}
	}
	return fallback
}

// Expose this method to use it in testing
func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := rp.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
		rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))

	default:
		// The session loop picks the new connection up where it left off
		if err := rp.sessionManager.ReconnectSession(sessionIdQuery, conn); err != nil {
			log.Println(err)
			_ = conn.WriteJSON(mc.NewMessage[mc.NoPayload](mc.CodeReceivedInvalidSessionID))
			conn.Close()
		}
	}
}

func (rp RequestProcessor) recordGameCreated() {
	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	// for now not killing the game for it
	if err := rp.analytics.RecordGameCreated(ctx, rp.ipnet); err != nil {
		log.Println(err)
	}
}

func (rp RequestProcessor) recordMatchResult(status mb.MatchStatus) {
	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := rp.analytics.RecordMatchResult(ctx, rp.ipnet, status); err != nil {
		log.Println(err)
	}
}

// startGame replaces whatever game the session was playing.
func (rp RequestProcessor) startGame(session *mc.Session, game *mb.Game) {
	if previous := rp.sessionManager.GetSessionGame(session); previous != nil {
		rp.gameManager.TerminateGame(previous.Uuid())
	}
	rp.sessionManager.SetSessionGame(session, game)
	rp.sessionManager.SetSessionPlacer(session, nil)
	rp.recordGameCreated()
}

func (rp RequestProcessor) processSessionRequests(session *mc.Session) {
	sessionId := session.Id()

	defer func() {
		if game := rp.sessionManager.GetSessionGame(session); game != nil {
			rp.gameManager.TerminateGame(game.Uuid())
		}
		if conn := session.Conn(); conn != nil {
			conn.Close()
		}
		rp.sessionManager.TerminateSession(sessionId)
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

sessionLoop:
	for {
		// A WebSocket frame can be one of 6 types: text=1, binary=2, ping=9, pong=10, close=8 and continuation=0
		// https://www.rfc-editor.org/rfc/rfc6455.html#section-11.8
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// This error happens after retries. If it's not nil,
			// then something was wrong with the session connection
			// and couldn't be resolved
			break sessionLoop
		}

		code, err := rp.sessionManager.FetchCodeFromMsg(payload)
		if err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		var respMsg interface{}

		switch code {

		// Fixed and random games start immediately. Manual mode
		// either brings all the placements or opens the placement phase.
		case mc.CodeNewGame:
			game, placer, msg := NewRequest(payload).HandleNewGame(rp.gameManager)
			if game != nil {
				rp.startGame(session, game)
			}
			if placer != nil {
				rp.sessionManager.SetSessionPlacer(session, placer)
			}
			respMsg = msg

		case mc.CodePreview:
			respMsg = NewRequest(payload).HandlePreview(rp.sessionManager.GetSessionPlacer(session))

		case mc.CodePlaceShip:
			game, msg := NewRequest(payload).HandlePlaceShip(rp.gameManager, rp.sessionManager.GetSessionPlacer(session))
			if game != nil {
				rp.startGame(session, game)
			}
			respMsg = msg

		// After every shot the game is checked for its end. The
		// end game message follows the fire response.
		case mc.CodeFire:
			game := rp.sessionManager.GetSessionGame(session)
			msg := NewRequest(payload).HandleFire(game)
			if err := rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

			if msg.Error != nil || !game.IsOver() {
				continue sessionLoop
			}

			log.Printf("game %s over after %s, status: %d\n", game.Uuid(), time.Since(game.CreatedAt()).Round(time.Second), game.MatchStatus())
			rp.recordMatchResult(game.MatchStatus())
			respEndGame := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)
			respEndGame.AddPayload(mc.RespEndGame{
				PlayerMatchStatus: game.MatchStatus(),
				Notification:      msg.Payload.View.Notification,
			})
			respMsg = respEndGame

		case mc.CodeToggleReveal:
			respMsg = NewRequest().HandleToggleReveal(rp.sessionManager.GetSessionGame(session))

		case mc.CodeBoard:
			respMsg = NewRequest().HandleBoard(rp.sessionManager.GetSessionGame(session))

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			respMsg = respInvalidSignal
		}

		if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
			break sessionLoop
		}
	}
}
