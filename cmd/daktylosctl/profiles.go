package main

import "fmt"

// runProfile is a named resolution preset for the fingerprint command. The
// preset covers resolution and budget only; strategy, probe, seed, and store
// selection always come from flags or the config file.
type runProfile struct {
	ID          string
	Description string
	Turns       int
	Repetitions int
	Step        float64
	Workers     int
}

// Preset steps must divide the unit interval exactly so every sweep renders
// to a square heatmap without a shape mismatch.
var fingerprintProfiles = []runProfile{
	{ID: "quick", Description: "coarse smoke-test sweep", Turns: 10, Repetitions: 3, Step: 0.25, Workers: 4},
	{ID: "standard", Description: "balanced default sweep", Turns: 50, Repetitions: 10, Step: 0.01, Workers: 4},
	{ID: "fine", Description: "dense sweep for publication heatmaps", Turns: 200, Repetitions: 50, Step: 0.005, Workers: 8},
}

func lookupProfile(profileID string) (runProfile, error) {
	if profileID == "" {
		return runProfile{}, fmt.Errorf("profile id is required")
	}
	for _, profile := range fingerprintProfiles {
		if profile.ID == profileID {
			return profile, nil
		}
	}
	return runProfile{}, fmt.Errorf("profile not found: %s", profileID)
}

func listProfiles() []runProfile {
	out := make([]runProfile, len(fingerprintProfiles))
	copy(out, fingerprintProfiles)
	return out
}
