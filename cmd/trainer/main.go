// Command trainer builds a trigram language model document from a
// corpus directory and a character allowlist.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mengyao/hanyin/internal/charset"
	"github.com/mengyao/hanyin/internal/config"
	"github.com/mengyao/hanyin/internal/logging"
	"github.com/mengyao/hanyin/internal/segment"
	"github.com/mengyao/hanyin/internal/train"
)

func main() {
	v := viper.New()
	var corpusDir, charsPath, dictPath, outPath string
	var workers int
	var quiet bool

	root := &cobra.Command{
		Use:   "trainer",
		Short: "Train a trigram language model from a corpus directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(quiet)
			scoring := config.FromViper(v)

			allow, err := charset.Load(charsPath)
			if err != nil {
				return fmt.Errorf("load charset: %w", err)
			}
			pd, err := segment.LoadPrefixDict(dictPath)
			if err != nil {
				return fmt.Errorf("load segmentation dictionary: %w", err)
			}
			seg := segment.New(pd)

			logger.Info().Str("corpus", corpusDir).Int("workers", workers).Msg("starting corpus ingestion")
			store, err := train.IngestCorpus(corpusDir, seg, allow, workers, logger)
			if err != nil {
				return fmt.Errorf("ingest corpus: %w", err)
			}
			logger.Info().Int("tuples", store.Len()).Msg("corpus ingestion complete")

			eng := store.Extract(scoring)
			logger.Info().Int64("total", eng.Total).Msg("sieve extraction complete")

			if err := eng.Save(outPath); err != nil {
				return fmt.Errorf("save model: %w", err)
			}
			logger.Info().Str("path", outPath).Msg("model written")
			return nil
		},
	}

	root.Flags().StringVarP(&corpusDir, "corpus", "c", "", "path to the training corpus directory (required)")
	root.Flags().StringVarP(&dictPath, "dict", "d", "", "path to the word-frequency segmentation dictionary (required)")
	root.Flags().StringVarP(&outPath, "output", "o", "engine.json", "output path for the trained model document")
	root.Flags().StringVar(&charsPath, "chars", "", "path to the character allowlist file (required)")
	root.Flags().IntVar(&workers, "workers", 4, "worker pool size for parallel corpus-file ingestion")
	root.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress info-level logging")
	_ = root.MarkFlagRequired("corpus")
	_ = root.MarkFlagRequired("dict")
	_ = root.MarkFlagRequired("chars")

	config.BindFlags(root, v)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
