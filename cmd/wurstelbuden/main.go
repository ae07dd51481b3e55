package main

import (
	"flag"
	"log"
	"os"

	"github.com/Zobiii/WurstelbudenSimulator/internal/config"
	"github.com/Zobiii/WurstelbudenSimulator/internal/entropy"
	"github.com/Zobiii/WurstelbudenSimulator/internal/game"
	"github.com/Zobiii/WurstelbudenSimulator/internal/history"
	"github.com/Zobiii/WurstelbudenSimulator/internal/save"
	"github.com/Zobiii/WurstelbudenSimulator/internal/shell"
	"github.com/Zobiii/WurstelbudenSimulator/internal/weather"
)

func main() {
	configPath := flag.String("config", "wurstelbuden_config.yml", "path to yaml config")
	seed := flag.Int64("seed", 0, "RNG seed for a reproducible session (0 = random)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	src := entropy.New()
	if *seed != 0 {
		src = entropy.NewSeeded(*seed)
	}

	eng := game.New(cfg.Balance, weather.New(src), src)

	store, err := save.NewStore(cfg.Saves.Dir, cfg.Saves.AutosaveKeep)
	if err != nil {
		log.Fatalf("open save store: %v", err)
	}

	var rec history.Recorder = history.Noop{}
	if cfg.History.Enabled {
		sqlite, err := history.NewSQLiteRecorder(cfg.History.Path)
		if err != nil {
			log.Fatalf("open history recorder: %v", err)
		}
		defer sqlite.Close()
		rec = sqlite
	}

	sh := shell.New(eng, store, rec, eng.NewState(), os.Stdin, os.Stdout)
	if err := sh.Run(); err != nil {
		log.Fatalf("session aborted: %v", err)
	}
}
