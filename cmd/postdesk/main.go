package main

import (
	"os"

	"go.uber.org/zap"

	"postdesk/internal/config"
	"postdesk/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEs, translator.LanguageEn},
	})

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
