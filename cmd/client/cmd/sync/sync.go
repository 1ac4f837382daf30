package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"plantkeeper/cmd/client/cmd/types"
	"plantkeeper/internal/app/client"
)

var syncStatus bool

var SyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Синхронизация коллекции с сервером",
	Long: `Сверяет локальную коллекцию с серверной и переносит более свежую
версию на отставшую сторону. Конфликт разрешается на уровне всей
коллекции: побеждает та, что менялась позже.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		if syncStatus {
			return showSyncStatus(app)
		}

		return runSync(cmd.Context(), app)
	},
}

func runSync(ctx context.Context, app *client.App) error {
	fmt.Println("=== Синхронизация коллекции ===")

	if !app.IsAuthenticated() {
		return fmt.Errorf("требуется аутентификация. Выполните: plantkeeper auth login")
	}

	fmt.Println("Начало синхронизации...")
	start := time.Now()

	result, err := app.Sync(ctx)
	if err != nil {
		return fmt.Errorf("ошибка синхронизации: %w", err)
	}

	duration := time.Since(start)

	fmt.Println()
	fmt.Println("✅ Синхронизация завершена!")
	fmt.Printf("Время выполнения: %v\n", duration.Round(time.Millisecond))

	switch result.Status {
	case client.SyncedUploaded:
		fmt.Printf("Коллекция загружена на сервер (записей: %d)\n", result.Records)
	case client.SyncedDownloaded:
		fmt.Printf("Коллекция получена с сервера (записей: %d)\n", result.Records)
	default:
		fmt.Println("Обе стороны уже согласованы, данные не передавались")
	}
	fmt.Printf("Метка согласования: %s\n", result.Timestamp.Format("2006-01-02 15:04:05"))

	return nil
}

func showSyncStatus(app *client.App) error {
	fmt.Println("=== Статус синхронизации ===")
	fmt.Printf("Состояние: %s\n", app.SyncState())

	fmt.Printf("Аутентификация: ")
	if app.IsAuthenticated() {
		fmt.Println("✅ выполнена")
	} else {
		fmt.Println("❌ требуется вход")
	}

	return nil
}

func init() {
	SyncCmd.Flags().BoolVar(&syncStatus, "status", false, "показать статус синхронизации")
}
