package savegame

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/repositories/gamestore"
)

// Record health values
const (
	StatusOK        = "ok"
	StatusAbsent    = "absent"
	StatusCorrupted = "corrupted"
)

// RecordReport is the health of one stored record
type RecordReport struct {
	Key     string
	Status  string
	Problem string
}

// Doctor finds stored records the gateway would silently discard and can
// delete them
type Doctor struct {
	store gamestore.Repository
}

// NewDoctor creates a doctor over the same store as the gateway
func NewDoctor(cfg *Config) (*Doctor, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid savegame config")
	}
	return &Doctor{store: cfg.Store}, nil
}

// Examine checks the roster and the save slot. Storage failures are
// returned, unlike the gateway.
func (d *Doctor) Examine(ctx context.Context) ([]RecordReport, error) {
	checks := []struct {
		key   string
		check func([]byte) error
	}{
		{key: gamestore.KeyCharacters, check: checkRoster},
		{key: gamestore.KeySavedGame, check: checkSavedGame},
	}

	reports := make([]RecordReport, 0, len(checks))
	for _, c := range checks {
		out, err := d.store.Get(ctx, gamestore.GetInput{Key: c.key})
		if errors.IsNotFound(err) {
			reports = append(reports, RecordReport{Key: c.key, Status: StatusAbsent})
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", c.key)
		}

		report := RecordReport{Key: c.key, Status: StatusOK}
		if err := c.check(out.Value); err != nil {
			report.Status = StatusCorrupted
			report.Problem = errors.GetMessage(err)
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// Repair deletes every corrupted record in reports and returns how many
// were removed
func (d *Doctor) Repair(ctx context.Context, reports []RecordReport) (int, error) {
	removed := 0
	for _, r := range reports {
		if r.Status != StatusCorrupted {
			continue
		}
		out, err := d.store.Delete(ctx, gamestore.DeleteInput{Key: r.Key})
		if err != nil {
			return removed, errors.Wrapf(err, "failed to delete %s", r.Key)
		}
		if out.Deleted {
			removed++
			slog.InfoContext(ctx, "deleted corrupted record", "key", r.Key, "problem", r.Problem)
		}
	}
	return removed, nil
}

func checkRoster(data []byte) error {
	var roster []entities.Character
	if err := json.Unmarshal(data, &roster); err != nil {
		return errors.InvalidArgumentf("unreadable JSON: %v", err)
	}

	vb := errors.NewValidationBuilder()
	seen := make(map[string]bool, len(roster))
	for i, c := range roster {
		field := fmt.Sprintf("characters[%d]", i)
		if c.ID == "" {
			vb.Field(field, "has no id")
		} else if seen[c.ID] {
			vb.Fieldf(field, "repeats id %q", c.ID)
		}
		seen[c.ID] = true
		errors.ValidateRequired(field+".name", c.Name, vb)
	}
	return vb.Build()
}

func checkSavedGame(data []byte) error {
	var stored storedGame
	if err := json.Unmarshal(data, &stored); err != nil {
		return errors.InvalidArgumentf("unreadable JSON: %v", err)
	}
	return validateStored(&stored)
}
