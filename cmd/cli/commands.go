package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(partidosCmd)
	rootCmd.AddCommand(inscribirCmd)
	rootCmd.AddCommand(cancelarCmd)
	rootCmd.AddCommand(nivelCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var partidosCmd = &cobra.Command{
	Use:   "partidos",
	Short: "List all matches with rosters and waitlists",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/partidos")
	},
}

var inscribirCmd = &cobra.Command{
	Use:   "inscribir <partidoId> <jugador>",
	Short: "Register a player for a match",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/partidos/inscribirse", map[string]string{
			"partidoId": args[0],
			"jugador":   args[1],
		})
	},
}

var cancelarCmd = &cobra.Command{
	Use:   "cancelar <partidoId> <jugador>",
	Short: "Cancel a player's registration for a match",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/partidos/cancelar", map[string]string{
			"partidoId": args[0],
			"jugador":   args[1],
		})
	},
}

var nivelCmd = &cobra.Command{
	Use:   "nivel <userId>",
	Short: "Show a player's average voted level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/nivel/" + args[0])
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request to %s: %w", url, err)
	}
	defer resp.Body.Close()
	return printResponse(resp)
}

func performPostRequest(endpoint string, body map[string]string) error {
	url := host + endpoint
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to make request to %s: %w", url, err)
	}
	defer resp.Body.Close()
	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	fmt.Printf("Status: %s\n", resp.Status)
	fmt.Println(string(body))
	return nil
}
