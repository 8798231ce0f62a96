package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/JadeHarbert/CourseProject/app/configs"
	"github.com/JadeHarbert/CourseProject/app/db/seeders"
	"github.com/JadeHarbert/CourseProject/app/middlewares"
	"github.com/JadeHarbert/CourseProject/app/models/migrations"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:   "diner",
		Usage:  "Restaurant menu web application",
		Action: serveAction,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Reset the menu (unless RESEED_ON_START=false) and start the web server",
				Action: serveAction,
			},
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withDB(func(env configs.ENV) error {
						db, err := configs.OpenConnection(env)
						if err != nil {
							return err
						}
						if err := migrations.AutoMigrate(db); err != nil {
							return err
						}
						zap.L().Info("Migration complete")
						return nil
					})
				},
			},
			{
				Name:  "seed",
				Usage: "Drop every table and repopulate the menu from the seed list",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withDB(func(env configs.ENV) error {
						db, err := configs.OpenConnection(env)
						if err != nil {
							return err
						}
						return seeders.ResetAndSeed(db)
					})
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate session and CSRF keys for .env",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Value: ".env.new_keys",
						Usage: "file the generated keys are written to",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return configs.GenerateAndPrintSessionKeys(c.String("out"))
				},
			},
			{
				Name:      "hash-password",
				Usage:     "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
				ArgsUsage: "<password>",
				Action: func(ctx context.Context, c *cli.Command) error {
					password := c.Args().First()
					if password == "" {
						return errors.New("hash-password needs the password as its argument")
					}
					hash, err := middlewares.HashPassword(password)
					if err != nil {
						return err
					}
					fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", hash)
					return nil
				},
			},
		},
	}
}

func RunCli() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewCommand().Run(ctx, os.Args); err != nil {
		zap.L().Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func withDB(fn func(env configs.ENV) error) error {
	env := configs.LoadEnv()
	flush, err := configs.InitLogger(env)
	if err != nil {
		return err
	}
	defer flush()
	return fn(env)
}
