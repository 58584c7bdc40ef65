package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/byte4ever/multidigest/command"
)

func newMultiplyCmd(ap *app) *cobra.Command {
	return &cobra.Command{
		Use:   "multiply A B",
		Short: "Print the product of two numbers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			const errCtx = "multiply"

			var operands [2]float32

			for idx, arg := range args {
				val, err := strconv.ParseFloat(arg, 32)
				if err != nil {
					return fmt.Errorf(
						"%s: operand %q: %w",
						errCtx, arg, err,
					)
				}

				operands[idx] = float32(val)
			}

			product := command.Multiply(operands[0], operands[1])

			ap.log.Debug(
				"multiplied",
				"a", operands[0],
				"b", operands[1],
				"product", product,
			)

			_, err := fmt.Fprintln(
				cmd.OutOrStdout(),
				strconv.FormatFloat(float64(product), 'g', -1, 32),
			)
			if err != nil {
				return fmt.Errorf("%s: %w", errCtx, err)
			}

			return nil
		},
	}
}
