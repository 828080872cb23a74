package anim

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// WriteFrames saves every frame in dir as frameNNNN.<format>, with frames.csv listing
// frame number, time step and time.
func (a *Animation) WriteFrames(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("anim.WriteFrames: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "frames.csv"))
	if err != nil {
		return fmt.Errorf("anim.WriteFrames: %w", err)
	}
	defer f.Close()
	csvw := csv.NewWriter(f)
	csvw.Write([]string{"frame", "index", "time"})
	for k, fr := range a.Frames {
		fn := fmt.Sprintf("frame%04d.%s", k, fr.Format)
		if err := os.WriteFile(filepath.Join(dir, fn), fr.Data, 0644); err != nil {
			return fmt.Errorf("anim.WriteFrames: %w", err)
		}
		csvw.Write([]string{strconv.Itoa(k), strconv.Itoa(fr.Index), strconv.FormatFloat(fr.Time, 'f', 3, 64)})
	}
	csvw.Flush()
	if err := csvw.Error(); err != nil {
		return fmt.Errorf("anim.WriteFrames: %w", err)
	}
	return f.Close()
}
