package main

import (
	"log"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ultraship/employeehub/apps/hub/tui"
	"github.com/ultraship/employeehub/core"
	"github.com/ultraship/employeehub/core/directory"
	"github.com/ultraship/employeehub/core/editsync"
	"github.com/ultraship/employeehub/core/lookup"
	"github.com/ultraship/employeehub/core/session"
	"github.com/ultraship/employeehub/services/graphapi"
	"github.com/ultraship/employeehub/services/lookupapi"
	logsvc "github.com/ultraship/employeehub/services/logger"
	localstore "github.com/ultraship/employeehub/storage/local"
)

func main() {
	conf := core.NewConfig()
	std := log.New(os.Stderr, conf.AppName+" ", log.LstdFlags|log.Lshortfile)

	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	// set up persisted state
	store, err := localstore.Open(conf.StateFile)
	errAndDie(err)

	// set up services; the clients read the token lazily so the session
	// service can be built with the client it feeds
	var sessions *session.Service
	token := func() string {
		if sessions == nil {
			return ""
		}
		return sessions.Token()
	}
	httpClient := &http.Client{Timeout: conf.API.Timeout}
	api := graphapi.NewClient(conf.API.BaseURL, httpClient, token)
	lookups := lookupapi.NewClient(conf.API.LookupBaseURL, httpClient, token)
	sessions = session.NewService(api, store)

	roster := directory.NewService(api)
	cache := lookup.NewCache()
	sync := editsync.NewSynchronizer(roster, cache)

	m := tui.New(tui.Deps{
		Cfg:      conf,
		Log:      logger,
		Auth:     api,
		Sessions: sessions,
		Roster:   roster,
		Cache:    cache,
		Sync:     sync,
		Lookups:  lookups,
	})

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("program exited", "error", err)
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
