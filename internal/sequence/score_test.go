package sequence

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestScoreWriteRead(t *testing.T) {
	score := &Score{
		Version: "1.0",
		FPS:     30,
		Scenes: []SceneDef{
			{
				Scene: Scene{ID: "intro", At: 0, Duration: 2},
				Animations: []AnimationDef{
					{Property: "opacity", From: 0, To: 1, Duration: 0.5, Easing: "ease-out-cubic"},
				},
			},
		},
		Beats: []Beat{{ID: "drop", At: 1.5}},
	}

	path := filepath.Join(t.TempDir(), "score.yaml")
	if err := WriteScore(score, path); err != nil {
		t.Fatalf("WriteScore failed: %v", err)
	}

	read, err := ReadScore(path)
	if err != nil {
		t.Fatalf("ReadScore failed: %v", err)
	}

	if read.Version != score.Version {
		t.Errorf("Version mismatch: expected %s, got %s", score.Version, read.Version)
	}
	if len(read.Scenes) != 1 || len(read.Scenes[0].Animations) != 1 {
		t.Fatalf("Scene structure mismatch: %+v", read.Scenes)
	}
	if read.Beats[0].ID != "drop" {
		t.Errorf("Beat mismatch: %+v", read.Beats)
	}
}

func TestScoreLoadAndBuildPlans(t *testing.T) {
	score := &Score{
		Version: "1.0",
		FPS:     30,
		Scenes: []SceneDef{
			{
				Scene: Scene{ID: "intro", At: 1, Duration: 2},
				Animations: []AnimationDef{
					{Property: "opacity", From: 0, To: 1, Duration: 0.5, Easing: "linear"},
				},
			},
			{Scene: Scene{ID: "silent", At: 3, Duration: 1}},
		},
	}

	orch := score.Load()
	if !orch.IsActive("intro", 1.5) {
		t.Error("loaded scene should be active at 1.5")
	}

	plans, err := score.BuildPlans(0) // fps 0 falls back to the score's own
	if err != nil {
		t.Fatalf("BuildPlans failed: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("expected 1 plan (scenes without animations are skipped), got %d", len(plans))
	}

	plan := plans["intro"]
	// Scene start (1s) folds into the global frame axis: frames 30..45.
	if v, _ := plan.Property("opacity", 30); v != 0 {
		t.Errorf("at scene start: got %g", v)
	}
	if v, _ := plan.Property("opacity", 37.5); math.Abs(v-0.5) > 1e-9 {
		t.Errorf("mid-fade: got %g", v)
	}
	if v, _ := plan.Property("opacity", 45); v != 1 {
		t.Errorf("at fade end: got %g", v)
	}
}

func TestSpringDefAliases(t *testing.T) {
	modern := SpringDef{Stiffness: 170, Damping: 26}.Config()
	legacy := SpringDef{Tension: 170, Friction: 26}.Config()

	if modern != legacy {
		t.Errorf("tension/friction must alias stiffness/damping: %+v vs %+v", modern, legacy)
	}
	if modern.Mass != 1 {
		t.Errorf("mass should default to 1, got %g", modern.Mass)
	}
}

func TestBuildPlansRejectsBadDefinition(t *testing.T) {
	score := &Score{
		FPS: 30,
		Scenes: []SceneDef{
			{
				Scene: Scene{ID: "broken", At: 0, Duration: 1},
				Animations: []AnimationDef{
					{Property: "x", From: 0, To: 1, Duration: -2},
				},
			},
		},
	}

	if _, err := score.BuildPlans(30); err == nil {
		t.Fatal("negative duration must fail the build")
	} else {
		t.Logf("%v", err)
	}
}

func TestFindLatestScore(t *testing.T) {
	dir := t.TempDir()

	files := []string{
		filepath.Join(dir, "score_2026-02-11_15-30-00.yaml"),
		filepath.Join(dir, "score_2026-02-13_01-00-00.yaml"),
	}
	for i, f := range files {
		os.WriteFile(f, []byte("version: \"1.0\"\n"), 0644)
		modTime := time.Now().Add(time.Duration(i) * time.Hour)
		os.Chtimes(f, modTime, modTime)
	}

	latest, err := FindLatestScore(dir)
	if err != nil {
		t.Fatalf("FindLatestScore failed: %v", err)
	}
	if latest != files[1] {
		t.Errorf("expected %s, got %s", files[1], latest)
	}

	if _, err := FindLatestScore(filepath.Join(dir, "empty")); err == nil {
		t.Error("missing directory should error")
	}
}
