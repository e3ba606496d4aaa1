package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/NishaManivannan/Bakery-chatbot/internal/adapters/memory"
	"github.com/NishaManivannan/Bakery-chatbot/internal/catalog"
	"github.com/NishaManivannan/Bakery-chatbot/internal/config"
	"github.com/NishaManivannan/Bakery-chatbot/internal/engine"
	"github.com/NishaManivannan/Bakery-chatbot/internal/logging"
	"github.com/NishaManivannan/Bakery-chatbot/internal/tui"
	"github.com/NishaManivannan/Bakery-chatbot/pkg/domain"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the bot in your terminal",
	Long: `Runs a local conversation against in-memory stores. Orders placed here
are not persisted anywhere. Type "exit" or "quit" to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		cat := catalog.Default()
		if cfg.Catalog.Path != "" {
			cat, err = catalog.Load(cfg.Catalog.Path)
			if err != nil {
				return err
			}
		}

		eng := engine.New(cat, memory.NewOrderStore(),
			engine.WithSessionTimeout(cfg.SessionTimeout()),
			engine.WithLogger(logging.NewNop()),
		)

		interactive := term.IsTerminal(int(os.Stdout.Fd()))
		render := func(s string) string { return s }
		if interactive {
			tui.PrintBanner()
			render = tui.NewRenderer()
		}

		ctx := context.Background()
		st := domain.NewState(time.Now())
		scanner := bufio.NewScanner(os.Stdin)

		// The engine speaks first.
		res := eng.Step(ctx, st, "")
		fmt.Print(render(res.Text))
		fmt.Println()

		for {
			if interactive {
				fmt.Print("> ")
			}
			if !scanner.Scan() {
				break
			}
			input := strings.TrimSpace(scanner.Text())
			if input == "" {
				continue
			}
			if input == "exit" || input == "quit" {
				fmt.Println("Bye!")
				break
			}

			res = eng.Step(ctx, st, input)
			fmt.Print(render(res.Text))
			fmt.Println()
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
