package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"bloqs/bringup"
	"bloqs/core"
	"bloqs/vulkan"
	"bloqs/window"
)

func main() {
	cfg, err := core.LoadConfig(os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		if cfg.Validation {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "%v (%s)\n", err, bringup.KindOf(err))
		}
		os.Exit(1)
	}
}

func run(cfg core.Config) error {
	level := slog.LevelInfo
	if cfg.Validation {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	platform := window.NewPlatform()
	defer platform.Terminate()

	vk, err := bringup.Run(platform, vulkan.New(logger), bringup.Options{
		Config:     cfg.Instance,
		Validation: cfg.Validation,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	defer vk.Destroy()

	sched := core.NewScheduler(context.Background())
	sched.Go(func(ctx context.Context) error {
		props := vk.Selection.Properties
		logger.Info("device ready",
			"name", props.Name,
			"type", props.Type.String(),
			"api", core.DecodeVersion(props.APIVersion).String(),
			"vendor", fmt.Sprintf("%#04x", props.VendorID),
			"device", fmt.Sprintf("%#04x", props.DeviceID))
		return nil
	})
	if err := sched.Wait(); err != nil {
		return err
	}

	win, err := window.NewWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer win.Destroy()

	win.Run()
	return nil
}
