package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"bookstore-api/internal/handler/middleware"
	"bookstore-api/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// migrate applies migrations/ with the atlas CLI, which must be on PATH.
//
//	go run ./cmd/migrate            # apply pending migrations
//	go run ./cmd/migrate -status    # print the revision state only
func main() {
	var (
		dir    = flag.String("dir", "migrations", "migration directory")
		status = flag.Bool("status", false, "print migration status without applying")
		bin    = flag.String("atlas", "atlas", "atlas binary")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, logger, cfg.DB, *dir, *bin, *status); err != nil {
		logger.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, dbCfg config.DBConfig, dir, bin string, statusOnly bool) error {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), bin)
	if err != nil {
		return err
	}

	url := dbCfg.BuildDSN()
	if statusOnly {
		st, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: url})
		if err != nil {
			return err
		}
		logger.Info("マイグレーション状態", "status", st.Status, "current", st.Current, "pending", len(st.Pending))
		return nil
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{URL: url})
	if err != nil {
		return err
	}
	logger.Info("マイグレーションを適用しました",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
	return nil
}
