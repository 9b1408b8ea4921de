package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/powchain/ledger"
)

var difficulty int

var rootCmd = &cobra.Command{
	Use:   "powchain",
	Short: "Single-node proof-of-work blockchain simulator",
	Long: `powchain mines a small hash-linked chain on the local machine, prints it,
validates it, then tampers with one block to show how validation catches
the modification. Higher difficulty means longer mining time; there is no
upper bound on the search, so keep the difficulty modest.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(difficulty)
	},
}

func init() {
	rootCmd.Flags().IntVarP(&difficulty, "difficulty", "d", 3,
		"required number of leading zero hex digits in block hashes")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runDemo(difficulty int) error {
	// Create a new slog logger backed by the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("o", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("W", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("chain", pterm.FgDarkGray.ToStyle()),
	).Render()

	bc, err := ledger.NewBlockchain(difficulty)
	if err != nil {
		return err
	}

	times := bc.MiningTimes()
	nonces := bc.NonceCounts()
	logger.Info("genesis mined",
		"difficulty", difficulty, "elapsed", times[0].String(), "nonce", nonces[0])

	payloads := []any{
		"Alice pays 5 BTC to Bob",
		"Bob pays 2 BTC to Charlie",
		map[string]any{"from": "Charlie", "to": "Dave", "amount": 1.234},
		"Final block with text",
	}

	for _, data := range payloads {
		mined := bc.AddBlock(data)
		times = bc.MiningTimes()
		nonces = bc.NonceCounts()
		last := len(times) - 1
		logger.Info("block mined",
			"index", mined.Index,
			"elapsed", times[last].String(),
			"nonce", nonces[last],
			"hash", mined.Hash[:20]+"...")
	}

	printChain(bc)

	ok, reason := bc.Validate()
	printVerdict(ok, reason)
	printStats(bc)

	logger.Warn("tampering with block 2 data")
	if err := bc.Tamper(2, "This was hacked!"); err != nil {
		return err
	}

	ok, reason = bc.Validate()
	printVerdict(ok, reason)
	printChain(bc)

	return nil
}
