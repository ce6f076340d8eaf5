package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/rl1809/retail-checkout/internal/adapter/shipping"
	"github.com/rl1809/retail-checkout/internal/core/domain"
	"github.com/rl1809/retail-checkout/internal/core/service"
	"github.com/rl1809/retail-checkout/internal/seed"
)

const maxPromptAttempts = 5

// readInt prompts until the user enters an integer within [low, high], giving
// up after maxPromptAttempts tries.
func readInt(reader *bufio.Reader, low, high int, prompt string) (int, error) {
	for attempt := 0; attempt < maxPromptAttempts; attempt++ {
		fmt.Printf("%s (%d-%d): ", prompt, low, high)
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || value < low || value > high {
			fmt.Println("Invalid input. Try again.")
			continue
		}
		return value, nil
	}
	return 0, fmt.Errorf("no valid input after %d attempts", maxPromptAttempts)
}

func printReceipt(receipt *domain.Receipt) {
	fmt.Println("=== Checkout Summary ===")
	fmt.Printf("Subtotal: $%s\n", receipt.Subtotal.StringFixed(2))
	fmt.Printf("Shipping: $%s\n", receipt.ShippingFee.StringFixed(2))
	fmt.Printf("Total Paid: $%s\n", receipt.Total.StringFixed(2))
	fmt.Printf("Remaining Balance: $%s\n", receipt.RemainingBalance.StringFixed(2))
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	catalog := seed.Catalog()
	customer := seed.Customer()

	shipper := shipping.NewConsoleShipper(os.Stdout)
	checkoutService := service.NewCheckoutService(shipper, nil, nil, logger)

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Printf("\n==== Welcome %s ====\n", customer.Name())
		fmt.Println("\n--- Product List ---")
		for i, description := range catalog.List() {
			fmt.Printf("%d. %s\n", i+1, description)
		}

		names := catalog.Names()
		choice, err := readInt(reader, 0, len(names), "Choose a product to add to cart, or 0 to checkout")
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if choice == 0 {
			receipt, err := checkoutService.Checkout(context.Background(), customer)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			printReceipt(receipt)
			return
		}

		product, _ := catalog.Find(names[choice-1])

		quantity, err := readInt(reader, 1, product.Quantity(), "Enter quantity to add")
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if err := customer.Cart().Add(product, quantity); err != nil {
			fmt.Println("Invalid quantity.")
		}
	}
}
