package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/dronecmd/dronecmd-go/pkg/features"
	"github.com/dronecmd/dronecmd-go/pkg/persistence"
	"github.com/dronecmd/dronecmd-go/pkg/settings"
)

// printSnapshot writes the settings of snap, sorted by name.
func printSnapshot(w io.Writer, snap settings.Snapshot) {
	names := snap.Names()
	fmt.Fprintf(w, "Settings: %d", len(names))
	if !snap.TakenAt.IsZero() {
		fmt.Fprintf(w, " (taken %s)", snap.TakenAt.UTC().Format(time.RFC3339))
	}
	fmt.Fprintln(w)

	for _, name := range names {
		f := snap.Fields[name]
		fmt.Fprintf(w, "  %-24s = %s", name, f.Current)
		if f.Range != nil {
			fmt.Fprintf(w, " [%s, %s]", f.Range.Min, f.Range.Max)
		}
		fmt.Fprintf(w, " (%d updates)\n", f.Count)
	}
}

// RunSnapshot prints the settings saved at path.
func RunSnapshot(p *features.Protocol, path string, w io.Writer) error {
	store := persistence.NewSettingsStore(path)
	st, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if st == nil {
		return fmt.Errorf("no settings saved at %s", path)
	}
	snap, err := st.Snapshot(p.Table)
	if err != nil {
		return fmt.Errorf("failed to rebuild settings: %w", err)
	}

	if st.DeviceName != "" {
		fmt.Fprintf(w, "Device: %s\n", st.DeviceName)
	}
	fmt.Fprintf(w, "Saved:  %s\n", st.SavedAt.UTC().Format(time.RFC3339))
	printSnapshot(w, snap)
	return nil
}
