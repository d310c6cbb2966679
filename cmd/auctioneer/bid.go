package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/seatwise/auctioneer/pkg/domain"
)

// bidCmd represents the bid command
var bidCmd = &cobra.Command{
	Use:   "bid NORTH SOUTH",
	Short: "Bid a deal and print the auction",
	Long: `Runs the auction for a North-South deal. Each hand is given as four
space-separated holdings in spades, hearts, diamonds, clubs order, e.g.
"AQ3 AK3 J2 AQ652".`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := newEngine(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		dealer := domain.North
		if name, _ := cmd.Flags().GetString("dealer"); name != "" {
			if dealer, err = domain.ParseSeat(name); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		}

		auction, err := engine.BidFrom(dealer, args[0], args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
			out := map[string]any{"auction": domain.Notation(auction.Bids())}
			if contract, ok := auction.FinalContract(); ok {
				out["contract"] = contract.String()
			}
			_ = json.NewEncoder(os.Stdout).Encode(out)
			return
		}

		printAuction(auction)
	},
}

func init() {
	rootCmd.AddCommand(bidCmd)

	bidCmd.Flags().StringP("dealer", "d", "N", "Dealer seat (N, E, S, W)")
	bidCmd.Flags().Bool("json", false, "Print the auction as JSON")
}

func printAuction(auction *domain.Auction) {
	colored := term.IsTerminal(int(os.Stdout.Fd()))
	p := termenv.ColorProfile()

	calls := make([]string, 0, auction.Len())
	for _, call := range domain.Notation(auction.Bids()) {
		if colored {
			call = renderCall(p, call)
		}
		calls = append(calls, call)
	}
	fmt.Println(strings.Join(calls, " "))

	if contract, ok := auction.FinalContract(); ok {
		fmt.Printf("Contract: %s\n", contract)
	} else {
		fmt.Println("Passed out")
	}
}

// renderCall colors a call by strain, red suits in red.
func renderCall(p termenv.Profile, call string) string {
	switch call[len(call)-1] {
	case 'H', 'D':
		return termenv.String(call).Foreground(p.Color("#f87171")).String()
	case 'S', 'C':
		return termenv.String(call).Foreground(p.Color("#818cf8")).String()
	case 'N':
		return termenv.String(call).Foreground(p.Color("#a78bfa")).String()
	}
	return call
}
