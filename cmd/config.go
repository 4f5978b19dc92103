package main

import (
	"github.com/spf13/cobra"
)

func configCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Prints the resolved OTP configuration as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			otp := a.cfg.OTPConfig()
			b, err := otp.MarshalJSON()
			if err != nil {
				return err
			}
			b = append(b, '\n')
			_, err = cmd.OutOrStdout().Write(b)

			return err
		},
	}
}
