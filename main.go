package main

import (
	"fmt"
	"os"

	"github.com/ringo-is-a-color/exithook/conf"
	"github.com/ringo-is-a-color/exithook/hook"
	"github.com/ringo-is-a-color/exithook/util/cli"
	"github.com/ringo-is-a-color/exithook/util/log"
	"github.com/ringo-is-a-color/exithook/util/osutil"
)

func main() {
	config, err := conf.Parse(cli.Parse().ConfigFile)
	if err != nil {
		log.Fatal("fail to parse the config file", err)
	}
	log.SetDefault(log.New(os.Stderr, config.Misc.VerboseLog))

	registration := hook.RegisterProgramExit(printer(config.Hooks.Program))
	log.Debug("program exit hook registered", "id", registration.ID())

	hook.WrapFunctionExit(func() {
		fmt.Println("My function")
	}, printer(config.Hooks.Function))()

	<-hook.GoThreadExit(func() {
		fmt.Println("My thread")
	}, printer(config.Hooks.Thread))

	fmt.Println("Main function")
	osutil.Exit(config.Misc.ExitCode)
}

// an empty message leaves the handler unset
func printer(msg string) func() {
	if msg == "" {
		return nil
	}
	return func() {
		fmt.Println(msg)
	}
}
