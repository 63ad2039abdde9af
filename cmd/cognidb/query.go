package main

import (
	"fmt"
	"strings"

	cognidb "github.com/cognidb/cognidb-sdk/go"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// queryCmd runs a statement with the stored connection profile and renders
// the result as a table.
var queryCmd = &cobra.Command{
	Use:   "query <statement>",
	Short: "Run a SQL statement",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadFileConfig()
		if err != nil {
			return err
		}
		password, err := loadPassword(cfg.User)
		if err != nil {
			return err
		}

		client, err := cognidb.Connect(cmd.Context(), &cognidb.Config{
			Endpoint: cfg.Endpoint,
			User:     cfg.User,
			Password: password,
			Managed:  cfg.Managed,
			Logger:   buildLogger(),
		})
		if err != nil {
			return err
		}
		defer client.Close()

		result, err := client.Query(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		switch result.Type {
		case cognidb.ResultTypeOK:
			pterm.Success.Println("OK")
			return nil
		case cognidb.ResultTypeTable:
			return renderTable(result)
		default:
			return fmt.Errorf("unexpected result type %q", result.Type)
		}
	},
}

func renderTable(result *cognidb.QueryResult) error {
	data := pterm.TableData{result.ColumnNames}
	for _, row := range result.Rows {
		cells := make([]string, 0, len(result.ColumnNames))
		for _, name := range result.ColumnNames {
			cells = append(cells, renderCell(row[name]))
		}
		data = append(data, cells)
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	pterm.Info.Printfln("%d row(s)", len(result.Rows))
	return nil
}

func renderCell(v cognidb.Value) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}
