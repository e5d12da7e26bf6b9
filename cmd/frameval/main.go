package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/frameval/internal/config"
	"github.com/ivlev/frameval/internal/engine"
	"github.com/ivlev/frameval/internal/sequence"
)

// frameDump is one evaluated frame in the output document.
type frameDump struct {
	Frame  float64            `yaml:"frame"`
	Values map[string]float64 `yaml:"values"`
}

type sceneDump struct {
	Scene  string      `yaml:"scene"`
	Frames []frameDump `yaml:"frames"`
}

type dump struct {
	FPS    int         `yaml:"fps"`
	Scenes []sceneDump `yaml:"scenes"`
}

func main() {
	cfg := config.Default()

	scorePtr := flag.String("score", "", "Path to a score YAML (default: latest file in -scores-dir)")
	scoresDirPtr := flag.String("scores-dir", cfg.ScoresDir, "Directory searched for the latest score")
	fpsPtr := flag.Int("fps", cfg.FPS, "Frames per second used to compile the score")
	stepPtr := flag.Float64("step", 1, "Frame step (use 0.5 for sub-frame sampling)")
	workersPtr := flag.Int("workers", 0, "Evaluation workers (0 = auto)")
	statsPtr := flag.Bool("stats", false, "Print a performance report")
	outputPtr := flag.String("o", "", "Output YAML path (default: stdout)")

	flag.Parse()

	cfg.FPS = *fpsPtr
	cfg.Workers = *workersPtr
	cfg.ShowStats = *statsPtr
	cfg.ScoresDir = *scoresDirPtr

	scorePath := *scorePtr
	if scorePath == "" {
		latest, err := sequence.FindLatestScore(cfg.ScoresDir)
		if err != nil {
			log.Fatalf("[-] Error: %v. Pass a score with -score", err)
		}
		scorePath = latest
		fmt.Fprintf(os.Stderr, "[*] Using score: %s\n", scorePath)
	}

	score, err := sequence.ReadScore(scorePath)
	if err != nil {
		log.Fatalf("[-] Failed to read score: %v", err)
	}

	// Build fails fast: a malformed definition must never reach evaluation.
	plans, err := score.BuildPlans(float64(cfg.FPS))
	if err != nil {
		log.Fatalf("[-] %v", err)
	}

	orch := score.Load()
	fmt.Fprintf(os.Stderr, "[*] Score: %d scenes, %.2fs total\n", len(score.Scenes), orch.TotalDuration())

	eng := engine.New(cfg)

	out := dump{FPS: cfg.FPS}
	ids := make([]string, 0, len(plans))
	for id := range plans {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		plan := plans[id]
		job := engine.Job{
			Plan: plan,
			End:  plan.DurationFrames(),
			Step: *stepPtr,
		}

		frames, err := eng.Run(context.Background(), job)
		if err != nil {
			log.Fatalf("[-] Evaluation of scene %q interrupted: %v", id, err)
		}

		sd := sceneDump{Scene: id, Frames: make([]frameDump, len(frames))}
		for i, fv := range frames {
			sd.Frames[i] = frameDump{Frame: fv.Frame, Values: fv.Values}
		}
		out.Scenes = append(out.Scenes, sd)
		fmt.Fprintf(os.Stderr, "[>] Scene %s: %d frames\n", id, len(frames))
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		log.Fatalf("[-] Failed to encode output: %v", err)
	}

	if *outputPtr == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*outputPtr, data, 0644); err != nil {
		log.Fatalf("[-] Failed to write %s: %v", *outputPtr, err)
	}
	fmt.Fprintf(os.Stderr, "[+++] Done: %s\n", *outputPtr)
}
