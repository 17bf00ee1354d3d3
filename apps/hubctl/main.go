package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/ultraship/employeehub/core"
	"github.com/ultraship/employeehub/core/session"
	"github.com/ultraship/employeehub/services/graphapi"
	localstore "github.com/ultraship/employeehub/storage/local"
)

func main() {
	conf := core.NewConfig()

	store, err := localstore.Open(conf.StateFile)
	errAndDie(err)

	var sessions *session.Service
	token := func() string {
		if sessions == nil {
			return ""
		}
		return sessions.Token()
	}
	httpClient := &http.Client{Timeout: conf.API.Timeout}
	api := graphapi.NewClient(conf.API.BaseURL, httpClient, token)
	sessions = session.NewService(api, store)

	cli := &commandLine{
		sessions: sessions,
		timeout: func() (context.Context, context.CancelFunc) {
			return context.WithTimeout(context.Background(), conf.API.Timeout)
		},
		out: os.Stdout,
	}
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
