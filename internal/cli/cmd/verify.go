package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/themesync/internal/cli/styles"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/infrastructure/jsruntime"
)

var (
	verifyBackend string
	verifyJSON    bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the head script resolves like the controller",
	Long: `Execute the head script for every combination of stored value (absent,
valid, malformed, unreadable) and system preference (light, dark,
unavailable) and compare the painted scheme, critical style and meta color
with what the controller computes for the same inputs.

Exits non-zero when any case disagrees.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVar(&verifyBackend, "backend", "", "storage backend to verify (default from appearance.storage_backend)")
	verifyCmd.Flags().BoolVar(&verifyJSON, "json", false, "print the cases as JSON")
}

var errParity = errors.New("head script disagrees with the controller")

func runVerify(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	inj, err := newInjector(app, verifyBackend)
	if err != nil {
		return err
	}

	rows, failed := parityRows(app.Contract, jsruntime.CheckParity(app.Ctx(), inj))

	if verifyJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			return err
		}
	} else {
		fmt.Println(styles.NewVerifyRenderer(app.Theme).Render(string(inj.Backend()), rows))
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d cases", errParity, failed, len(rows))
	}
	return nil
}

func parityRows(contract entity.DocumentContract, results []jsruntime.ParityResult) ([]styles.ParityRow, int) {
	rows := make([]styles.ParityRow, 0, len(results))
	failed := 0
	for _, r := range results {
		row := styles.ParityRow{
			Stored:        r.Stored.Label,
			System:        r.System.Label,
			Want:          string(r.Want),
			Got:           r.Got,
			CriticalStyle: r.CriticalStyle,
			Meta:          r.Meta,
			OK:            r.OK(contract),
		}
		if r.Err != nil {
			row.Err = r.Err.Error()
		}
		if !row.OK {
			failed++
		}
		rows = append(rows, row)
	}
	return rows, failed
}
