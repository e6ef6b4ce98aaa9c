// Package config holds the tunable constants of the scoring model and
// binds them to cobra flags/environment variables via viper, so an
// operator can override them without recompiling.
package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Scoring holds the additive-smoothing and order-weighting constants
// used to score a candidate word against its trigram context, plus
// the decoder's word-length cap and the trainer's sieve capacity.
type Scoring struct {
	Laplace    int64
	Double     int64
	Triple     int64
	MaxWordLen int
	SieveSize  int
}

// Default returns the reference scoring constants, except MaxWordLen
// which is capped to a practical 4-6 range rather than left effectively
// unlimited.
func Default() Scoring {
	return Scoring{
		Laplace:    1_000,
		Double:     100,
		Triple:     1_000_000_000,
		MaxWordLen: 6,
		SieveSize:  50_000_000,
	}
}

// BindFlags registers --laplace, --double, --triple, --max-word-len and
// -k/--sieve-capacity on cmd, each falling back through viper to the
// matching environment variable (HANYIN_LAPLACE, etc.) and finally to
// its compiled-in default.
func BindFlags(cmd *cobra.Command, v *viper.Viper) {
	d := Default()

	cmd.Flags().Int64("laplace", d.Laplace, "additive smoothing constant for all score terms")
	cmd.Flags().Int64("double", d.Double, "bigram weighting multiplier")
	cmd.Flags().Int64("triple", d.Triple, "trigram weighting multiplier")
	cmd.Flags().Int("max-word-len", d.MaxWordLen, "longest word (in pinyin syllables) considered per decoder step")
	cmd.Flags().IntP("sieve-capacity", "k", d.SieveSize, "bounded top-K heap capacity for the training sieve")

	_ = v.BindPFlag("laplace", cmd.Flags().Lookup("laplace"))
	_ = v.BindPFlag("double", cmd.Flags().Lookup("double"))
	_ = v.BindPFlag("triple", cmd.Flags().Lookup("triple"))
	_ = v.BindPFlag("max-word-len", cmd.Flags().Lookup("max-word-len"))
	_ = v.BindPFlag("sieve-capacity", cmd.Flags().Lookup("sieve-capacity"))

	v.SetEnvPrefix("hanyin")
	v.AutomaticEnv()
}

// FromViper reads the bound values back out of v.
func FromViper(v *viper.Viper) Scoring {
	return Scoring{
		Laplace:    v.GetInt64("laplace"),
		Double:     v.GetInt64("double"),
		Triple:     v.GetInt64("triple"),
		MaxWordLen: v.GetInt("max-word-len"),
		SieveSize:  v.GetInt("sieve-capacity"),
	}
}
