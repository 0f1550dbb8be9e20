package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/natefinch/lumberjack.v2"

	"cetcounselor/config"
	"cetcounselor/handlers"
	"cetcounselor/internal/database"
	"cetcounselor/services/activity"
	"cetcounselor/services/caplist"
	"cetcounselor/services/catalog"
	"cetcounselor/services/cutoffs"
	"cetcounselor/services/guide"
	"cetcounselor/services/profile"
	"cetcounselor/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the settings file")
	flag.Parse()

	settings, err := config.NewManager(*configPath).Load()
	if err != nil {
		log.Fatalf("[main] load settings: %v", err)
	}

	logWriter := io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   settings.Log.FilePath,
		MaxSize:    settings.Log.MaxSizeMB,
		MaxBackups: settings.Log.MaxBackups,
		MaxAge:     settings.Log.MaxAgeDays,
	})
	log.SetOutput(logWriter)
	slog.SetDefault(slog.New(slog.NewTextHandler(logWriter, nil)))

	db, err := database.NewDB(database.Config{DatabasePath: settings.Storage.DatabasePath})
	if err != nil {
		log.Fatalf("[main] open database: %v", err)
	}
	defer db.Close()

	catalogSvc, err := catalog.NewService(db.Catalog)
	if err != nil {
		log.Fatalf("[main] load catalog: %v", err)
	}

	osFs := afero.NewOsFs()
	profileStore := profile.NewStore(osFs, settings.Storage.DataDir)
	profileSvc := profile.NewService(profileStore)
	activitySvc := activity.NewService(db.Activity)
	capListSvc := caplist.NewService(profileStore, activitySvc)
	cutoffSvc := cutoffs.NewService(db.Cutoffs)
	guideSvc := guide.NewService()

	var primary caplist.ShareSink
	if sink := caplist.NewCommandSink("share", settings.Share.ShareCommand); sink != nil {
		primary = sink
	}
	var fallback caplist.ShareSink
	if sink := caplist.NewCommandSink("clipboard", settings.Share.ClipboardCommand); sink != nil {
		fallback = sink
	} else {
		fallback = caplist.NewFileSink(osFs, settings.Storage.DataDir)
	}
	sharer := &caplist.Sharer{Primary: primary, Fallback: fallback}

	authHandler := handlers.NewAuthHandler(profileSvc)
	collegesHandler := handlers.NewCollegesHandler(catalogSvc)
	cutoffsHandler := handlers.NewCutoffsHandler(cutoffSvc, activitySvc)
	capListHandler := handlers.NewCapListHandler(capListSvc, catalogSvc, sharer)
	guideHandler := handlers.NewGuideHandler(guideSvc)
	dashboardHandler := handlers.NewDashboardHandler(profileSvc, activitySvc)
	siteHandler := handlers.NewSiteHandler()

	router := utils.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	api.HandleFunc("/profile", authHandler.Profile).Methods(http.MethodGet)
	api.HandleFunc("/colleges", collegesHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/colleges/{id}", collegesHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/cutoffs/options", cutoffsHandler.Options).Methods(http.MethodGet)
	api.HandleFunc("/cutoffs/{college}/{branch}/{category}", cutoffsHandler.Series).Methods(http.MethodGet)
	api.HandleFunc("/caplist", capListHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/caplist", capListHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/caplist/export", capListHandler.Export).Methods(http.MethodGet)
	api.HandleFunc("/caplist/share", capListHandler.Share).Methods(http.MethodPost)
	api.HandleFunc("/caplist/{id}", capListHandler.Remove).Methods(http.MethodDelete)
	api.HandleFunc("/guide", guideHandler.Content).Methods(http.MethodGet)
	api.HandleFunc("/dashboard", dashboardHandler.View).Methods(http.MethodGet)
	api.HandleFunc("/site", siteHandler.Content).Methods(http.MethodGet)

	server := &http.Server{
		Addr:              settings.Server.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[main] listening on %s", settings.Server.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[main] server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("[main] shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("[main] shutdown: %v", err)
	}
}
