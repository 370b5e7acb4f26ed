package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"car-rental-system/internal/domain/vehicle"
	"car-rental-system/internal/usecase/commands"
	"car-rental-system/internal/usecase/queries"
)

// Menu is the interactive presentation layer. It owns all input parsing
// and message formatting; every usecase error is converted to a display
// message here and the loop continues.
type Menu struct {
	rentals      commands.RentalCommands
	registration commands.RegistrationCommands
	fleet        queries.FleetQueries
	rentalViews  queries.RentalQueries
	logger       *slog.Logger
	in           *bufio.Scanner
	out          io.Writer
}

func NewMenu(
	rentals commands.RentalCommands,
	registration commands.RegistrationCommands,
	fleet queries.FleetQueries,
	rentalViews queries.RentalQueries,
	logger *slog.Logger,
	in io.Reader,
	out io.Writer,
) *Menu {
	return &Menu{
		rentals:      rentals,
		registration: registration,
		fleet:        fleet,
		rentalViews:  rentalViews,
		logger:       logger,
		in:           bufio.NewScanner(in),
		out:          out,
	}
}

// Run drives the main menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintf(m.out, "%s\n===== Car Rental System =====%s\n", colorBlue, colorReset)
		fmt.Fprintln(m.out, "1. Manage Customers")
		fmt.Fprintln(m.out, "2. Manage Vehicles")
		fmt.Fprintln(m.out, "3. Manage Rentals")
		fmt.Fprintln(m.out, "4. Exit")

		choice, ok := m.promptInt("Enter your choice: ")
		if !ok {
			return nil
		}

		switch choice {
		case 1:
			if !m.customerMenu(ctx) {
				return nil
			}
		case 2:
			if !m.vehicleMenu(ctx) {
				return nil
			}
		case 3:
			if !m.rentalMenu(ctx) {
				return nil
			}
		case 4:
			fmt.Fprintf(m.out, "%sThank you for using the Car Rental System!%s\n", colorGreen, colorReset)
			return nil
		default:
			m.invalidChoice()
		}
	}
}

// Submenus report false when input has ended, so the caller can stop.

func (m *Menu) customerMenu(ctx context.Context) bool {
	fmt.Fprintf(m.out, "%s\n===== Manage Customers =====%s\n", colorBlue, colorReset)
	fmt.Fprintln(m.out, "1. Add Customer")
	fmt.Fprintln(m.out, "2. View Rental History")
	fmt.Fprintln(m.out, "3. Back to Main Menu")

	choice, ok := m.promptInt("Enter your choice: ")
	if !ok {
		return false
	}

	switch choice {
	case 1:
		name, ok := m.promptLine("Enter Customer Name: ")
		if !ok {
			return false
		}
		receipt, err := m.registration.RegisterCustomer(ctx, name)
		if err != nil {
			m.reportError(err)
			return true
		}
		fmt.Fprintf(m.out, "%sCustomer added with ID: %s%s\n", colorGreen, receipt.ID, colorReset)
	case 2:
		id, ok := m.promptLine("Enter Customer ID: ")
		if !ok {
			return false
		}
		m.showRentalHistory(ctx, id)
	case 3:
	default:
		m.invalidChoice()
	}
	return true
}

func (m *Menu) vehicleMenu(ctx context.Context) bool {
	fmt.Fprintf(m.out, "%s\n===== Manage Vehicles =====%s\n", colorBlue, colorReset)
	fmt.Fprintln(m.out, "1. View Available Vehicles")
	fmt.Fprintln(m.out, "2. Search Vehicles")
	fmt.Fprintln(m.out, "3. Add Vehicle")
	fmt.Fprintln(m.out, "4. Mark Vehicle for Maintenance")
	fmt.Fprintln(m.out, "5. Clear Vehicle Maintenance")
	fmt.Fprintln(m.out, "6. Back to Main Menu")

	choice, ok := m.promptInt("Enter your choice: ")
	if !ok {
		return false
	}

	switch choice {
	case 1:
		m.showAvailableVehicles(ctx)
	case 2:
		query, ok := m.promptLine("Enter search text: ")
		if !ok {
			return false
		}
		m.showSearchResults(ctx, query)
	case 3:
		return m.addVehicle(ctx)
	case 4:
		id, ok := m.promptLine("Enter Vehicle ID: ")
		if !ok {
			return false
		}
		if err := m.rentals.MarkForMaintenance(ctx, id); err != nil {
			m.reportError(err)
			return true
		}
		fmt.Fprintf(m.out, "%sVehicle marked as under maintenance.%s\n", colorYellow, colorReset)
	case 5:
		id, ok := m.promptLine("Enter Vehicle ID: ")
		if !ok {
			return false
		}
		if err := m.rentals.ClearMaintenance(ctx, id); err != nil {
			m.reportError(err)
			return true
		}
		fmt.Fprintf(m.out, "%sVehicle maintenance cleared.%s\n", colorGreen, colorReset)
	case 6:
	default:
		m.invalidChoice()
	}
	return true
}

func (m *Menu) rentalMenu(ctx context.Context) bool {
	fmt.Fprintf(m.out, "%s\n===== Manage Rentals =====%s\n", colorBlue, colorReset)
	fmt.Fprintln(m.out, "1. Rent a Vehicle")
	fmt.Fprintln(m.out, "2. Return a Vehicle")
	fmt.Fprintln(m.out, "3. View Active Rentals")
	fmt.Fprintln(m.out, "4. Back to Main Menu")

	choice, ok := m.promptInt("Enter your choice: ")
	if !ok {
		return false
	}

	switch choice {
	case 1:
		return m.rentVehicle(ctx)
	case 2:
		id, ok := m.promptLine("Enter Vehicle ID: ")
		if !ok {
			return false
		}
		if err := m.rentals.ReturnVehicle(ctx, id); err != nil {
			m.reportError(err)
			return true
		}
		fmt.Fprintf(m.out, "%sVehicle returned successfully.%s\n", colorGreen, colorReset)
	case 3:
		m.showActiveRentals(ctx)
	case 4:
	default:
		m.invalidChoice()
	}
	return true
}

func (m *Menu) rentVehicle(ctx context.Context) bool {
	customerID, ok := m.promptLine("Enter Customer ID: ")
	if !ok {
		return false
	}

	m.showAvailableVehicles(ctx)

	vehicleID, ok := m.promptLine("Enter Vehicle ID: ")
	if !ok {
		return false
	}
	days, ok := m.promptInt("Enter Rental Days: ")
	if !ok {
		return false
	}

	receipt, err := m.rentals.RentVehicle(ctx, vehicleID, customerID, days)
	if err != nil {
		m.reportError(err)
		return true
	}
	fmt.Fprintf(m.out, "%sSuccessfully rented %s %s to %s for %d days ($%.2f).%s\n",
		colorGreen, receipt.Brand, receipt.Model, receipt.CustomerName, receipt.Days, receipt.TotalPrice, colorReset)
	return true
}

func (m *Menu) addVehicle(ctx context.Context) bool {
	id, ok := m.promptLine("Enter Vehicle ID: ")
	if !ok {
		return false
	}
	brand, ok := m.promptLine("Enter Brand: ")
	if !ok {
		return false
	}
	model, ok := m.promptLine("Enter Model: ")
	if !ok {
		return false
	}
	price, ok := m.promptFloat("Enter Base Price per Day: ")
	if !ok {
		return false
	}
	kindInput, ok := m.promptLine("Enter Kind (standard/luxury): ")
	if !ok {
		return false
	}

	kind := vehicle.Kind(strings.ToLower(strings.TrimSpace(kindInput)))
	if err := m.registration.AddVehicle(ctx, id, brand, model, price, kind); err != nil {
		m.reportError(err)
		return true
	}
	fmt.Fprintf(m.out, "%sVehicle %s added to the fleet.%s\n", colorGreen, strings.TrimSpace(id), colorReset)
	return true
}

func (m *Menu) showAvailableVehicles(ctx context.Context) {
	views, err := m.fleet.ListAvailable(ctx)
	if err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintf(m.out, "%s\nAvailable Vehicles:%s\n", colorBlue, colorReset)
	m.printVehicles(views)
}

func (m *Menu) showSearchResults(ctx context.Context, query string) {
	views, err := m.fleet.Search(ctx, query)
	if err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintf(m.out, "%s\nSearch Results:%s\n", colorBlue, colorReset)
	m.printVehicles(views)
}

func (m *Menu) printVehicles(views []queries.VehicleView) {
	for _, v := range views {
		fmt.Fprintf(m.out, "%s - %s %s ($%.2f/day)\n", v.ID, v.Brand, v.Model, v.PricePerDay)
	}
}

func (m *Menu) showRentalHistory(ctx context.Context, customerID string) {
	view, err := m.rentalViews.RentalHistory(ctx, customerID)
	if err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintf(m.out, "%s\nRental History for %s:%s\n", colorBlue, view.CustomerName, colorReset)
	for _, item := range view.Items {
		fmt.Fprintf(m.out, "%s %s for %d days\n", item.Brand, item.Model, item.Days)
	}
}

func (m *Menu) showActiveRentals(ctx context.Context) {
	views, err := m.rentalViews.ActiveRentals(ctx)
	if err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintf(m.out, "%s\nActive Rentals:%s\n", colorBlue, colorReset)
	for _, r := range views {
		fmt.Fprintf(m.out, "%s %s rented by %s (%s) for %d days\n",
			r.Brand, r.Model, r.CustomerName, r.CustomerID, r.Days)
	}
}

func (m *Menu) invalidChoice() {
	fmt.Fprintf(m.out, "%sInvalid choice. Please try again.%s\n", colorRed, colorReset)
}

func (m *Menu) promptLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) promptInt(prompt string) (int, bool) {
	for {
		line, ok := m.promptLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			m.invalidChoice()
			continue
		}
		return n, true
	}
}

func (m *Menu) promptFloat(prompt string) (float64, bool) {
	for {
		line, ok := m.promptLine(prompt)
		if !ok {
			return 0, false
		}
		f, err := strconv.ParseFloat(line, 64)
		if err != nil {
			m.invalidChoice()
			continue
		}
		return f, true
	}
}
