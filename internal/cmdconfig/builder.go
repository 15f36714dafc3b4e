package cmdconfig

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// CmdBuilder adds flags to a cobra command and binds them to viper when the command runs
type CmdBuilder struct {
	cmd      *cobra.Command
	bindings map[string]*pflag.Flag
}

type flagConfig struct {
	shorthand string
}

type flagOpt func(c *flagConfig)

type flagOptions struct{}

// FlagOptions holds the options which may be passed to the Add*Flag functions
var FlagOptions flagOptions

// WithShortHand sets the one letter shorthand for a flag
func (flagOptions) WithShortHand(shorthand string) flagOpt {
	return func(c *flagConfig) {
		c.shorthand = shorthand
	}
}

func applyFlagOpts(opts []flagOpt) flagConfig {
	var cfg flagConfig
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// OnCmd starts a builder for cmd.
// The command's PreRunE binds the registered flags to viper and then runs the pre run hook;
// PostRunE runs the post run hook.
func OnCmd(cmd *cobra.Command) *CmdBuilder {
	b := &CmdBuilder{
		cmd:      cmd,
		bindings: map[string]*pflag.Flag{},
	}

	// bind flags at run time rather than build time, since several commands share flag names
	b.cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		for flagName, flag := range b.bindings {
			if err := viper.GetViper().BindPFlag(flagName, flag); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", flagName, err)
			}
		}
		return preRunHook(cmd, args)
	}
	b.cmd.PostRunE = func(cmd *cobra.Command, args []string) error {
		return postRunHook(cmd, args)
	}

	return b
}

// AddStringFlag is a helper function to add a string flag to a command
func (c *CmdBuilder) AddStringFlag(name string, defaultValue string, desc string, opts ...flagOpt) *CmdBuilder {
	cfg := applyFlagOpts(opts)
	c.cmd.Flags().StringP(name, cfg.shorthand, defaultValue, desc)
	c.bindings[name] = c.cmd.Flags().Lookup(name)
	return c
}

// AddIntFlag is a helper function to add an integer flag to a command
func (c *CmdBuilder) AddIntFlag(name string, defaultValue int, desc string, opts ...flagOpt) *CmdBuilder {
	cfg := applyFlagOpts(opts)
	c.cmd.Flags().IntP(name, cfg.shorthand, defaultValue, desc)
	c.bindings[name] = c.cmd.Flags().Lookup(name)
	return c
}

// AddBoolFlag is a helper function to add a boolean flag to a command
func (c *CmdBuilder) AddBoolFlag(name string, defaultValue bool, desc string, opts ...flagOpt) *CmdBuilder {
	cfg := applyFlagOpts(opts)
	c.cmd.Flags().BoolP(name, cfg.shorthand, defaultValue, desc)
	c.bindings[name] = c.cmd.Flags().Lookup(name)
	return c
}

// AddVarFlag is a helper function to add a flag backed by a custom pflag.Value, e.g. an enum
func (c *CmdBuilder) AddVarFlag(value pflag.Value, name string, desc string, opts ...flagOpt) *CmdBuilder {
	cfg := applyFlagOpts(opts)
	c.cmd.Flags().VarP(value, name, cfg.shorthand, desc)
	c.bindings[name] = c.cmd.Flags().Lookup(name)
	return c
}

// AddPersistentStringFlag is a helper function to add a string flag inherited by all subcommands
func (c *CmdBuilder) AddPersistentStringFlag(name string, defaultValue string, desc string) *CmdBuilder {
	c.cmd.PersistentFlags().String(name, defaultValue, desc)
	// persistent flags are bound immediately, they are not overridden by subcommands
	if err := viper.GetViper().BindPFlag(name, c.cmd.PersistentFlags().Lookup(name)); err != nil {
		panic(err)
	}
	return c
}
