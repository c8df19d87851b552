package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cardengine/cmd/app/commands"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getCardCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "validate-card",
			Usage: "Check a card number's Luhn digit and identify its issuer",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "number",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Card number (7 to 18 digits)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := commands.LoadContainer()
				if err != nil {
					return err
				}
				defer commands.CloseContainer(container, container.Logger())

				useCase, err := container.CardUseCase()
				if err != nil {
					return err
				}

				return commands.RunValidateCard(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultWriter(),
					cmd.String("number"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "generate-card",
			Usage: "Generate Luhn-valid card numbers from a major identifier prefix",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "prefix",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Major identifier prefix (e.g., 4, 37, 6011)",
				},
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"c"},
					Value:   1,
					Usage:   "How many numbers to generate",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := commands.LoadContainer()
				if err != nil {
					return err
				}
				defer commands.CloseContainer(container, container.Logger())

				useCase, err := container.CardUseCase()
				if err != nil {
					return err
				}

				return commands.RunGenerateCard(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultWriter(),
					cmd.String("prefix"),
					int(cmd.Int("count")),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "classify-card",
			Usage: "Identify the issuer and major industry of a digit sequence",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "number",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Card number or prefix",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := commands.LoadContainer()
				if err != nil {
					return err
				}
				defer commands.CloseContainer(container, container.Logger())

				useCase, err := container.CardUseCase()
				if err != nil {
					return err
				}

				return commands.RunClassifyCard(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultWriter(),
					cmd.String("number"),
					cmd.String("format"),
				)
			},
		},
	}
}
