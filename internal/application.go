package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/game"
	"github.com/rocketscienceinc/tictactoe-console/internal/history"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/terminal"
)

// RunApp - wires the terminal, the engine and the history log together and
// runs either a play session or a history command.
func RunApp(logger *slog.Logger, conf *config.Config, args []string) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	if len(args) > 0 && args[0] == "history" {
		var command, arg string
		if len(args) > 1 {
			command = args[1]
		}
		if len(args) > 2 {
			arg = args[2]
		}

		historyService := service.NewHistoryService(logger, conf.HistoryFile, os.Stdout)
		return historyService.Execute(command, arg)
	}

	gameState, err := game.NewGame(conf.BoardSize)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
	selector := game.NewSelector(rng)
	renderer := terminal.NewRenderer(os.Stdout, conf.Colors)
	reader := terminal.NewReader(os.Stdin, os.Stdout)
	writer := history.NewWriter(logger, conf.HistoryFile)

	gamePlay := service.NewGamePlayService(logger, gameState, selector, renderer, reader, writer, os.Stdout)

	log.Info("starting game", "board_size", conf.BoardSize)

	return gamePlay.Run(ctx)
}
