package cli

import (
	"context"
	"fmt"
)

// runVerify takes the token from args or asks for it
func (c *Cli) runVerify(ctx context.Context, args []string) error {
	var token string
	if len(args) > 0 {
		token = args[0]
	} else {
		var err error
		token, err = c.io.ReadInput("Token: ")
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
	}

	if _, err := c.users.VerifyToken(ctx, token); err != nil {
		return err
	}

	c.io.Println("✓ Token is valid")

	return nil
}
