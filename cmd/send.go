package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tradelingo/superbear/backend"
	"github.com/tradelingo/superbear/config"
	"github.com/tradelingo/superbear/widget"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a single message and print the reply",
	Long: `Send one message to the TradeLingo backend without opening the TUI.
Useful for scripting and for checking connectivity.`,
	RunE: runSend,
}

var (
	sendText    string
	sendTherapy bool

	sendTradeCode   string
	sendTradeAction string
	sendTradeUnits  string
	sendTradePrice  string
	sendTradeDate   string
)

func init() {
	sendCmd.Flags().StringVar(&sendText, "text", "", "Message text (required)")
	sendCmd.Flags().BoolVar(&sendTherapy, "therapy", false, "Use the therapy endpoint")
	sendCmd.Flags().StringVar(&sendTradeCode, "trade-code", "", "Stock code of the trade being discussed")
	sendCmd.Flags().StringVar(&sendTradeAction, "trade-action", "", "Trade action (buy/sell)")
	sendCmd.Flags().StringVar(&sendTradeUnits, "trade-units", "", "Trade units")
	sendCmd.Flags().StringVar(&sendTradePrice, "trade-price", "", "Trade price")
	sendCmd.Flags().StringVar(&sendTradeDate, "trade-date", "", "Trade date")
	_ = sendCmd.MarkFlagRequired("text")
	rootCmd.AddCommand(sendCmd)
}

func runSend(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	v := tutorVariant(cfg)
	if sendTherapy {
		v = therapyVariant(cfg)
	}
	w := widget.New(v, buildClient(cfg), nil, buildProfile(cfg))

	var trade *backend.TradeData
	if sendTradeCode != "" || sendTradeAction != "" {
		trade = &backend.TradeData{
			StockCode: sendTradeCode,
			Action:    sendTradeAction,
			Units:     sendTradeUnits,
			Price:     sendTradePrice,
			Date:      sendTradeDate,
		}
	}

	if !w.SendTrade(context.Background(), sendText, trade) {
		return fmt.Errorf("message rejected (empty text)")
	}

	msgs := w.Session().Messages()
	last := msgs[len(msgs)-1]
	fmt.Println(last.Content)
	return nil
}
