package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dm/internal/services/savegame"
)

var fixRecords bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check stored heroes and the save slot",
	Long:  `Report stored records the game would discard, and optionally delete them.`,
	RunE:  runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&fixRecords, "fix", false, "offer to delete corrupted records")
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	out := cmd.OutOrStdout()

	store, closeStore, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	doctor, err := savegame.NewDoctor(&savegame.Config{Store: store})
	if err != nil {
		return err
	}

	reports, err := doctor.Examine(ctx)
	if err != nil {
		return err
	}

	corrupted := 0
	for _, r := range reports {
		if r.Status == savegame.StatusCorrupted {
			corrupted++
			fmt.Fprintf(out, "✗ %s: %s\n", r.Key, r.Problem)
			continue
		}
		fmt.Fprintf(out, "✓ %s: %s\n", r.Key, r.Status)
	}

	if corrupted == 0 || !fixRecords {
		return nil
	}

	fmt.Fprint(out, "\nDo you want to DELETE these corrupted records? (yes/no): ")
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if strings.TrimSpace(answer) != "yes" {
		fmt.Fprintln(out, "Aborted - no changes made")
		return nil
	}

	removed, err := doctor.Repair(ctx, reports)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted %d record(s)\n", removed)
	return nil
}
