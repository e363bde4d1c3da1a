package main

import (
	"log"

	"github.com/openlot/openlot-backend-go/internal/api"
	"github.com/openlot/openlot-backend-go/internal/config"
	"github.com/openlot/openlot-backend-go/internal/database"
	"github.com/openlot/openlot-backend-go/internal/dataset"
	"github.com/openlot/openlot-backend-go/internal/handler"
	"github.com/openlot/openlot-backend-go/internal/repository"
	"github.com/openlot/openlot-backend-go/internal/service"
	"github.com/openlot/openlot-backend-go/internal/session"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	repo := repository.NewLocationRepository(database.GetDB())
	fileSource := &dataset.FileSource{Path: cfg.DatasetPath}

	var source dataset.Source = fileSource
	if cfg.DatasetSource == "sqlite" {
		source = &dataset.RepositorySource{Repo: repo}
	}
	store := dataset.NewStore(source)

	sessions := session.NewManager(cfg.MaxCards)

	recommendService := service.NewRecommendationService(store)
	locationService := service.NewLocationService(store, sessions)
	datasetService := service.NewDatasetService(store, fileSource, repo)

	router := api.SetupRouter(cfg, api.Handlers{
		Recommend: handler.NewRecommendHandler(recommendService),
		Location:  handler.NewLocationHandler(locationService),
		Selection: handler.NewSelectionHandler(locationService),
		Dataset:   handler.NewDatasetHandler(datasetService),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
