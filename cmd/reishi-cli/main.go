package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/orbchat/reishi/engine"
	"github.com/orbchat/reishi/keyword"
	"github.com/orbchat/reishi/rules"
	"github.com/orbchat/reishi/setstore"

	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.App{
		Name:  "reishi-cli",
		Usage: "informal debugging CLI tool for the moderation detectors",
	}
	app.Commands = []*cli.Command{
		&cli.Command{
			Name:   "tokens",
			Usage:  "reads lines of text from stdin, outputs canonical tokens",
			Action: runTokens,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "leet",
					Usage: "also apply leetspeak reversal to each token",
				},
			},
		},
		&cli.Command{
			Name:   "check",
			Usage:  "reads lines of text from stdin, runs the text detectors, outputs verdicts",
			Action: runCheck,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "json-set-file",
					Usage: "path to JSON file containing the blocked-words set",
					Value: "rules/example_sets.json",
				},
			},
		},
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	slog.SetDefault(slog.New(h))
	if err := app.Run(os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(-1)
	}
}

func runTokens(cctx *cli.Context) error {
	leet := cctx.Bool("leet")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		toks := keyword.Tokenize(scanner.Text())
		if leet {
			for i, tok := range toks {
				toks[i] = keyword.ReverseLeetspeak(tok)
			}
		}
		fmt.Println(strings.Join(toks, " "))
	}
	return scanner.Err()
}

func runCheck(cctx *cli.Context) error {
	ctx := context.Background()

	blocklist := setstore.NewMemSetStore()
	if err := blocklist.LoadFromFileJSON(cctx.String("json-set-file")); err != nil {
		return err
	}
	eng := engine.EngineTestFixture()
	eng.Blocklist = blocklist
	// interactive confirmation makes no sense against stdin input
	eng.Rules = engine.RuleSet{
		MessageRules: []engine.MessageRuleFunc{
			rules.FillerGibberishRule,
			rules.BlockedWordRule,
			rules.FloodRule,
			rules.LinkRule,
		},
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		msg := &engine.ChatMessage{
			ID:        "stdin",
			ChannelID: "stdin",
			Author:    engine.Actor{ID: "stdin"},
			Text:      line,
		}
		c := engine.NewMessageContext(ctx, &eng, msg)
		eng.Rules.CallMessageRules(c)
		for _, v := range engine.ExtractEffects(c) {
			fmt.Printf("VERDICT\t%s\t%s\t%s\n", v.Kind, v.Detail, line)
		}
	}
	return scanner.Err()
}
