// cmd/client/cmd/init.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"plantkeeper/cmd/client/cmd/auth"
	"plantkeeper/cmd/client/cmd/garden"
	"plantkeeper/cmd/client/cmd/sync"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Инициализировать клиент PlantKeeper",
	Long: `Команда init выполняет первоначальную настройку клиента:
	1. Создает директорию для локального хранилища
	2. Проверяет соединение с сервером

Работать с коллекцией можно и без сервера — синхронизация и аккаунт
нужны только для переноса данных между устройствами.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("=== Инициализация PlantKeeper ===")
		fmt.Println()

		// Хранилище создается при старте приложения, проверяем только сервер
		fmt.Println("Проверка соединения с сервером...")
		if err := app.HealthCheck(cmd.Context()); err != nil {
			fmt.Printf("⚠️  Предупреждение: не удалось подключиться к серверу: %v\n", err)
			fmt.Println("Вы можете работать в офлайн-режиме, но синхронизация будет недоступна.")
		} else {
			fmt.Println("✓ Соединение с сервером установлено")
		}

		fmt.Println()
		fmt.Println("✅ Инициализация успешно завершена!")
		fmt.Println()
		fmt.Println("Что дальше:")
		fmt.Println("1. Зарегистрируйтесь на сервере: plantkeeper auth register")
		fmt.Println("2. Добавьте первое растение: plantkeeper garden add")
		fmt.Println("3. Или распознайте его по фото: plantkeeper identify photo.jpg")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	// Команды аутентификации
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)

	// Команды работы с коллекцией
	rootCmd.AddCommand(garden.GardenCmd)
	garden.GardenCmd.AddCommand(garden.AddCmd)
	garden.GardenCmd.AddCommand(garden.ListCmd)
	garden.GardenCmd.AddCommand(garden.DueCmd)
	garden.GardenCmd.AddCommand(garden.WaterCmd)
	garden.GardenCmd.AddCommand(garden.IntervalCmd)
	garden.GardenCmd.AddCommand(garden.RemoveCmd)
	garden.GardenCmd.AddCommand(garden.ExportCmd)
	garden.GardenCmd.AddCommand(garden.AdjustCmd)

	rootCmd.AddCommand(sync.SyncCmd)
	rootCmd.AddCommand(identifyCmd)
	rootCmd.AddCommand(diagnoseCmd)
}
