package sequence

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// GenerateScorePath creates a timestamped score filename inside dir.
func GenerateScorePath(dir string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("score_%s.yaml", timestamp))
}

// FindLatestScore finds the most recently modified score file in dir.
func FindLatestScore(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read scores directory: %w", err)
	}

	var scores []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			scores = append(scores, filepath.Join(dir, entry.Name()))
		}
	}

	if len(scores) == 0 {
		return "", fmt.Errorf("no score files found in %s", dir)
	}

	// Sort by modification time (newest first)
	sort.Slice(scores, func(i, j int) bool {
		infoI, _ := os.Stat(scores[i])
		infoJ, _ := os.Stat(scores[j])
		return infoI.ModTime().After(infoJ.ModTime())
	})

	return scores[0], nil
}
