package socket

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"monopoly-online/app/engine"
	"monopoly-online/app/models"
	"monopoly-online/pkg"
	"monopoly-online/platform/board"
	"monopoly-online/platform/cache"
	"monopoly-online/platform/database"
	"monopoly-online/platform/rooms"

	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

const (
	roomCodeLen    = 6
	roomKeyTTL     = 3600 // seconds, refreshed on join
	cleanupDelay   = 60 * time.Second
	defaultPlayers = 2
)

type session struct {
	PlayerID string
	RoomID   string
}

type turnResult struct {
	Events []engine.Event `json:"events"`
	State  engine.State   `json:"state"`
}

func getSession(s socketio.Conn) *session {
	if sess, ok := s.Context().(*session); ok {
		return sess
	}
	return nil
}

func marshal(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Error("marshal failed")
		return "{}"
	}
	return string(data)
}

func CreateSocketIOServer() {
	server, err := socketio.NewServer(nil)
	if err != nil {
		panic(err)
	}

	db := database.PostgreSQLConnection()
	defer db.Close()

	pool := cache.CreateRedisPool()
	defer pool.Close()

	directory := rooms.NewDirectory()

	cells := board.LoadCells()
	chance, chest := board.LoadCards()
	cfg := engine.Config{Cells: cells, Chance: chance, Chest: chest}

	cleanupRoom := func(roomID string) {
		conn := pool.Get()
		defer conn.Close()
		cache.Del("room."+roomID, &conn)
		game := &models.Game{Id: roomID}
		db.Model(game).WherePK().Delete()
		log.WithField("room", roomID).Info("room cleaned up")
	}

	// runs an engine action under the room lock and broadcasts the result
	runAction := func(s socketio.Conn, action func(*engine.Game) ([]engine.Event, error)) {
		sess := getSession(s)
		if sess == nil {
			return
		}
		var result turnResult
		finished := false
		err := directory.With(sess.RoomID, func(g *engine.Game) error {
			events, err := action(g)
			if err != nil {
				return err
			}
			result = turnResult{Events: events, State: g.Snapshot()}
			finished = g.GameOver
			return nil
		})
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		server.BroadcastToRoom("/", sess.RoomID, "turn-result", marshal(result))
		if finished {
			game := &models.Game{Id: sess.RoomID}
			db.Model(game).WherePK().Set("status = ?", "finished").Update()
		}
	}

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext(nil)
		return nil
	})

	server.OnEvent("/", "create-room", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		capacity, err := strconv.Atoi(result["max_players"])
		if err != nil {
			capacity = defaultPlayers
		}

		// a code reserved over POST /game/create may be carried in
		roomID := result["room_id"]
		if roomID == "" {
			roomID = pkg.RandString(roomCodeLen)
		}
		playerID := uuid.NewV4().String()

		game := engine.New(roomID, capacity, cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
		if err := game.AddPlayer(playerID, result["name"]); err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		directory.Create(roomID, game)

		row := &models.Game{Id: roomID, Name: result["name"], Status: "waiting", MaxPlayers: game.Capacity}
		if _, err := db.Model(row).OnConflict("DO NOTHING").Insert(); err != nil {
			log.WithError(err).Error("failed recording room")
		}
		conn := pool.Get()
		defer conn.Close()
		cache.SetEx("room."+roomID, roomKeyTTL, "waiting", &conn)

		s.SetContext(&session{PlayerID: playerID, RoomID: roomID})
		s.Join(roomID)
		s.Emit("room-created", marshal(map[string]interface{}{
			"room_id":   roomID,
			"player_id": playerID,
			"state":     game.Snapshot(),
		}))
		log.WithFields(log.Fields{"room": roomID, "player": playerID}).Info("room created")
	})

	server.OnEvent("/", "join-room", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		roomID := result["room_id"]
		playerID := uuid.NewV4().String()

		var state engine.State
		started := false
		err := directory.With(roomID, func(g *engine.Game) error {
			if err := g.AddPlayer(playerID, result["name"]); err != nil {
				return err
			}
			state = g.Snapshot()
			started = g.Started
			return nil
		})
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}

		directory.CancelDelete(roomID)
		s.SetContext(&session{PlayerID: playerID, RoomID: roomID})
		s.Join(roomID)

		conn := pool.Get()
		cache.SetEx("room."+roomID, roomKeyTTL, "waiting", &conn)
		conn.Close()

		s.Emit("room-joined", marshal(map[string]interface{}{
			"room_id":   roomID,
			"player_id": playerID,
			"state":     state,
		}))
		server.BroadcastToRoom("/", roomID, "player-join", marshal(state))

		if started {
			game := &models.Game{Id: roomID}
			db.Model(game).WherePK().Set("status = ?", "in progress").Update()
			server.BroadcastToRoom("/", roomID, "game-start", marshal(state))
			log.WithField("room", roomID).Info("game started")
		}
	})

	server.OnEvent("/", "roll-dice", func(s socketio.Conn, jsonStr string) {
		sess := getSession(s)
		if sess == nil {
			return
		}
		runAction(s, func(g *engine.Game) ([]engine.Event, error) {
			return g.Roll(sess.PlayerID)
		})
	})

	server.OnEvent("/", "buy-property", func(s socketio.Conn, jsonStr string) {
		sess := getSession(s)
		if sess == nil {
			return
		}
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)
		cellID, err := strconv.Atoi(result["cell_id"])
		if err != nil {
			s.Emit("error-message", "invalid cell")
			return
		}
		runAction(s, func(g *engine.Game) ([]engine.Event, error) {
			return g.Buy(sess.PlayerID, cellID)
		})
	})

	server.OnEvent("/", "pass-property", func(s socketio.Conn, jsonStr string) {
		sess := getSession(s)
		if sess == nil {
			return
		}
		runAction(s, func(g *engine.Game) ([]engine.Event, error) {
			return g.Pass(sess.PlayerID)
		})
	})

	server.OnEvent("/", "buy-house", func(s socketio.Conn, jsonStr string) {
		sess := getSession(s)
		if sess == nil {
			return
		}
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)
		cellID, err := strconv.Atoi(result["cell_id"])
		if err != nil {
			s.Emit("error-message", "invalid cell")
			return
		}
		runAction(s, func(g *engine.Game) ([]engine.Event, error) {
			return g.BuildHouse(sess.PlayerID, cellID)
		})
	})

	server.OnEvent("/", "pay-jail", func(s socketio.Conn, jsonStr string) {
		sess := getSession(s)
		if sess == nil {
			return
		}
		runAction(s, func(g *engine.Game) ([]engine.Event, error) {
			return g.PayBail(sess.PlayerID)
		})
	})

	server.OnEvent("/", "surrender", func(s socketio.Conn, jsonStr string) {
		sess := getSession(s)
		if sess == nil {
			return
		}
		runAction(s, func(g *engine.Game) ([]engine.Event, error) {
			return g.Surrender(sess.PlayerID)
		})
	})

	server.OnEvent("/", "force-unlock", func(s socketio.Conn, jsonStr string) {
		sess := getSession(s)
		if sess == nil {
			return
		}
		runAction(s, func(g *engine.Game) ([]engine.Event, error) {
			return g.ForceUnlock(sess.PlayerID)
		})
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		log.WithError(e).Error("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		sess := getSession(s)
		if sess == nil {
			return
		}
		server.BroadcastToRoom("/", sess.RoomID, "player-left", sess.PlayerID)
		roomID := sess.RoomID
		directory.DeleteAfter(roomID, cleanupDelay, func() { cleanupRoom(roomID) })
		s.LeaveAll()
		log.WithFields(log.Fields{"room": roomID, "reason": reason}).Info("player disconnected")
	})

	go server.Serve()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	http.ListenAndServe(":8000", c.Handler(mux))
}
