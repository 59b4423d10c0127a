package handler

import (
	"net/http"
	"sync"

	"guesthouse/config"
	"guesthouse/di"
	"guesthouse/shared/logger"
)

var (
	app  *di.App
	once sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		app = di.InitializeService()
		app.Start()
	})

	app.HTTP.ServeHTTP(w, r)
}
