package cli

import (
	"context"
	"fmt"
	"time"

	"watchtune/internal/constants"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: settings endpoint reachable and well-formed
	start := time.Now()
	reqCtx, cancel := context.WithTimeout(context.Background(), constants.RequestTimeout)
	defer cancel()

	settings, err := ctx.Client.FetchSettings(reqCtx)
	if err != nil {
		fmt.Printf("❌ Settings endpoint reachable: FAIL\n")
		fmt.Printf("   Server: %s\n", ctx.ServerURL)
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Settings endpoint reachable: OK (%v)\n", time.Since(start).Round(time.Millisecond))
	}

	// Check 2: document sanity (only if reachable)
	if !hasError {
		if settings.AbsenceThreshold <= 0 || settings.SmartphoneThreshold <= 0 {
			fmt.Printf("⚠ Document sanity: WARNING\n")
			fmt.Printf("   Thresholds should be positive: absence=%d smartphone=%d\n",
				settings.AbsenceThreshold, settings.SmartphoneThreshold)
		} else {
			fmt.Printf("✓ Document sanity: OK (%d landmarks, %d objects, %d extensions)\n",
				len(settings.LandmarkSettings), len(settings.DetectionObjects), len(settings.MessageExtensions))
		}
	} else {
		fmt.Printf("⊘ Document sanity: SKIPPED (endpoint not reachable)\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}
