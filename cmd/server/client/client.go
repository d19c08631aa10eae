// Package client provides test commands for the narrative gRPC service
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	v1alpha1 "github.com/KirkDiggler/rpg-narrative/internal/handlers/story/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the narrative API",
	Long:  `Client commands allow you to test the narrative API by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(registerHeroCmd)
	ClientCmd.AddCommand(createSessionCmd)

	// Commands on a live session
	ClientCmd.AddCommand(statusCmd)
	ClientCmd.AddCommand(advanceCmd)
	ClientCmd.AddCommand(chooseCmd)
	ClientCmd.AddCommand(moveCmd)
	ClientCmd.AddCommand(whereCmd)
	ClientCmd.AddCommand(inventoryCmd)
	ClientCmd.AddCommand(giveCmd)
	ClientCmd.AddCommand(useCmd)
	ClientCmd.AddCommand(endSessionCmd)
}

// createStoryClient creates a story service client
func createStoryClient() (v1alpha1.StoryServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewStoryServiceClient(conn), cleanup, nil
}

type rpc func(v1alpha1.StoryServiceClient, context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error)

// invoke sends one request and prints the response as JSON
func invoke(cmd *cobra.Command, method rpc, fields map[string]any) error {
	client, cleanup, err := createStoryClient()
	if err != nil {
		return err
	}
	defer cleanup()

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := method(client, ctx, req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
