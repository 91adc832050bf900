package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/neilgarb/royalset"
	"golang.org/x/net/websocket"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	manager := royalset.NewManager(royalset.NewLedger(), cfg.Seed)
	if err := manager.SetDefaultHoles(cfg.DefaultHoles); err != nil {
		log.Fatalf("ROYALSET_DEFAULT_HOLES: %v", err)
	}

	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, newRouter(manager, cfg.ClientDir)); err != nil {
		log.Fatal(err)
	}
}

func newRouter(manager *royalset.Manager, clientDir string) *httprouter.Router {
	r := httprouter.New()

	r.GET("/ws", websocketHandler(manager))
	r.GET("/ledger", ledgerHandler(manager))

	if clientDir != "" {
		r.ServeFiles("/client/*filepath", http.Dir(clientDir))
	}
	return r
}

func websocketHandler(manager *royalset.Manager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		websocket.Handler(func(conn *websocket.Conn) {
			serveConn(manager, conn)
		}).ServeHTTP(w, r)
	}
}

func ledgerHandler(manager *royalset.Manager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(royalset.LedgerMessage{
			Scores: manager.Ledger().Scores(),
		})
	}
}

func serveConn(manager *royalset.Manager, conn *websocket.Conn) {
	defer conn.Close()

	id, err := manager.Open(conn.Request().RemoteAddr)
	if err != nil {
		log.Println(err)
		return
	}
	defer manager.Close(id)

	for {
		var msg royalset.Message
		err := websocket.JSON.Receive(conn, &msg)
		if err != nil {
			return
		}

		reply, err := manager.Handle(id, &msg)
		if err != nil {
			reply = royalset.MakeMessage("error", err.Error())
		}
		if err := websocket.JSON.Send(conn, reply); err != nil {
			return
		}
	}
}
