package main

import (
	"fmt"
	"io"
	"os"

	"contracts/pkg/contract"
	"contracts/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func checkCommand(_ *app) *cobra.Command {
	var (
		kind string
		file string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Checks a JSON payload against a contract kind",
		Example: "  contracts check --kind otp-response --file reply.json\n" +
			"  echo '\"Active\"' | contracts check --kind otp-status",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("could not open payload: %w", err)
				}
				defer f.Close()
				in = f
			}

			payload, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("could not read payload: %w", err)
			}

			ctx := logger.WithFields(cmd.Context(), zap.String("kind", kind))
			if _, err := contract.New().Check(ctx, contract.Kind(kind), payload); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", kind)

			return err
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Contract kind, see 'contracts docs' or GET /v1/contracts")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Payload file, stdin when empty or -")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}
