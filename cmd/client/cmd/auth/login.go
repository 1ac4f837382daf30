// cmd/client/cmd/auth/login.go
package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"plantkeeper/cmd/client/cmd/types"
	"plantkeeper/internal/app/client"
)

var syncAfterLogin bool

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в систему PlantKeeper",
	Long: `Аутентификация на сервере PlantKeeper.

После входа токен сохраняется локально для последующих операций.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("приложение не инициализировано")
		}

		fmt.Println("=== Вход в систему ===")
		fmt.Println()

		fmt.Print("Login: ")
		var login string
		_, _ = fmt.Scanln(&login)

		fmt.Print("Пароль: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		fmt.Println()

		fmt.Println("Аутентификация...")
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Login(ctx, login, string(password)); err != nil {
			return fmt.Errorf("ошибка аутентификации: %w", err)
		}

		fmt.Println()
		fmt.Println("✅ Вход выполнен успешно!")

		if syncAfterLogin {
			fmt.Println("Синхронизация коллекции...")
			result, err := app.Sync(ctx)
			if err != nil {
				fmt.Printf("⚠️  Предупреждение: ошибка синхронизации: %v\n", err)
				fmt.Println("Вы можете продолжить работу в офлайн-режиме")
			} else {
				fmt.Printf("✓ Коллекция синхронизирована (%s, записей: %d)\n",
					result.Status, result.Records)
			}
		}

		return nil
	},
}

func init() {
	LoginCmd.Flags().BoolVarP(&syncAfterLogin, "sync", "s", true, "синхронизировать коллекцию после входа")
}
