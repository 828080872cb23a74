package transect

import (
	"encoding/gob"
	"fmt"
	"os"
)

type cached struct {
	Key    string
	Series Series
}

func (s *Series) saveGob(fp, key string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" transect.saveGob %v", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(cached{key, *s}); err != nil {
		return fmt.Errorf(" transect.saveGob %v", err)
	}
	return nil
}

// loadGob returns a cached series when it was decoded with the same files, names
// and offsets.
func loadGob(fp, key string) (*Series, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var c cached
	if err := gob.NewDecoder(f).Decode(&c); err != nil {
		return nil, fmt.Errorf(" transect.loadGob %v", err)
	}
	if c.Key != key {
		return nil, fmt.Errorf(" transect.loadGob: %s was built with other settings", fp)
	}
	if err := c.Series.Validate(); err != nil {
		return nil, fmt.Errorf(" transect.loadGob: %v", err)
	}
	return &c.Series, nil
}
