package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/powchain/ledger"
)

// formatData renders a block payload for display: free-form text as is,
// structured payloads as compact JSON.
func formatData(data any) string {
	if s, ok := data.(string); ok {
		return s
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(encoded)
}

func shortHash(hash string) string {
	if len(hash) <= 12 {
		return hash
	}
	return hash[:12] + "..."
}

// printChain renders the whole chain as a table, one row per block.
func printChain(bc *ledger.Blockchain) {
	blocks := bc.Blocks()

	rows := pterm.TableData{{"Index", "Timestamp", "Data", "Nonce", "PrevHash", "Hash"}}
	for _, b := range blocks {
		rows = append(rows, []string{
			fmt.Sprintf("%d", b.Index),
			b.Timestamp,
			formatData(b.Data),
			fmt.Sprintf("%d", b.Nonce),
			shortHash(b.PrevHash),
			shortHash(b.Hash),
		})
	}

	pterm.DefaultSection.Printfln("Blockchain (length = %d)", len(blocks))
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		pterm.Error.Printfln("failed to render chain: %v", err)
	}
}

// printVerdict renders the validation outcome in a colored box.
func printVerdict(ok bool, reason string) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	if ok {
		pterm.Println(pbox.WithTitle(pterm.LightGreen("|VALIDATION|")).WithTitleTopCenter().Sprintf("VALID - %s", reason))
		return
	}
	pterm.Println(pbox.WithTitle(pterm.LightRed("|VALIDATION|")).WithTitleTopCenter().Sprintf("INVALID - %s", reason))
}

// printStats renders the mining statistics box.
func printStats(bc *ledger.Blockchain) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	statsString := pterm.Sprintfln("Average mining time: %v", bc.AverageMiningTime().Round(time.Microsecond)) +
		pterm.Sprintfln("Average nonce      : %.1f", bc.AverageNonce())
	pterm.Println(pbox.WithTitle(pterm.LightYellow("|MINING STATS|")).WithTitleTopCenter().Sprint(statsString))
}
