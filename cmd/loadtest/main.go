// loadtest is a stress client for the drawing-and-guessing server,
// adapted from the teacher's backend/test/test.go to the event-based
// protocol: it creates one room, joins the remaining clients onto its room
// code (the argument counts the creator too), and spams
// draw_move/guess/chat_message traffic from each.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
)

const wsURL = "ws://localhost:3000/ws"

type wireMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func main() {
	args := os.Args
	if len(args) < 2 {
		log.Fatal("Usage: go run ./cmd/loadtest <number_of_clients>")
	}

	numClients, err := strconv.Atoi(args[1])
	if err != nil {
		log.Fatal("invalid number of clients:", err)
	}

	conn, roomCode := createRoom()
	fmt.Println("created room:", roomCode)
	go spam(conn, "player0")

	for i := 1; i < numClients; i++ {
		go joinAndSpam(roomCode, fmt.Sprintf("player%d", i))
	}

	select {}
}

func createRoom() (*websocket.Conn, string) {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		log.Fatal("ws connect error:", err)
	}

	send(conn, "create_room", struct{}{})

	for {
		var msg wireMessage
		if err := conn.ReadJSON(&msg); err != nil {
			log.Fatal("ws read error waiting for room_created:", err)
		}
		if msg.Type == "room_created" {
			var payload struct {
				Room struct {
					Code string `json:"code"`
				} `json:"room"`
			}
			if err := json.Unmarshal(msg.Data, &payload); err != nil {
				log.Fatal("invalid room_created payload:", err)
			}
			return conn, payload.Room.Code
		}
	}
}

func joinAndSpam(roomCode, playerID string) {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		log.Println("ws connect error:", err)
		return
	}
	defer conn.Close()

	send(conn, "join_room", struct {
		RoomID string `json:"roomId"`
	}{roomCode})

	fmt.Printf("%s joined %s\n", playerID, roomCode)
	spam(conn, playerID)
}

// spam drains inbound frames (so the socket doesn't stall on a full read
// buffer) while repeatedly sending a random mix of gameplay events.
func spam(conn *websocket.Conn, playerID string) {
	defer conn.Close()
	go drain(conn)

	for i := 0; i < 100; i++ {
		switch rand.Intn(3) {
		case 0:
			send(conn, "draw_move", struct {
				X, Y  int
				Color string
			}{rand.Intn(800), rand.Intn(600), "#000000"})
		case 1:
			send(conn, "guess", struct {
				Guess string `json:"guess"`
			}{fmt.Sprintf("guess-from-%s", playerID)})
		case 2:
			send(conn, "chat_message", struct {
				Message string `json:"message"`
			}{fmt.Sprintf("hello from %s", playerID)})
		}
		time.Sleep(time.Duration(100+rand.Intn(900)) * time.Millisecond)
	}

	fmt.Printf("%s finished sending messages\n", playerID)
}

func drain(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func send(conn *websocket.Conn, eventType string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("marshal error for %s: %v", eventType, err)
		return
	}
	if err := conn.WriteJSON(wireMessage{Type: eventType, Data: data}); err != nil {
		log.Printf("write error for %s: %v", eventType, err)
	}
}
