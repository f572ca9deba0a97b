package cli

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reellab/setcarbon/internal/engine"
	"github.com/reellab/setcarbon/internal/store"
	"github.com/reellab/setcarbon/internal/units"
)

// newEntriesCmd creates the entries command group: add, list, and rm.
func newEntriesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Manage activity entries",
	}
	cmd.AddCommand(newEntriesAddCmd(opts), newEntriesListCmd(opts), newEntriesRmCmd(opts))
	return cmd
}

func newEntriesAddCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an activity entry",
	}
	cmd.AddCommand(
		newAddUtilitiesCmd(opts),
		newAddFuelCmd(opts),
		newAddEVCmd(opts),
		newAddHotelCmd(opts),
		newAddTravelCmd(opts),
		newAddCharterCmd(opts),
	)
	return cmd
}

// mutateStore loads the collections, applies fn, and saves the result.
func mutateStore(opts *rootOptions, fn func(*engine.Collections) error) error {
	repo := store.NewJSONStore(opts.resolveStorePath(), opts.logger)
	collections, err := repo.Load()
	if err != nil {
		return err
	}
	if err := fn(&collections); err != nil {
		return err
	}
	return repo.Save(collections)
}

// regionDefaults fills an empty country/state pair from the config defaults.
func regionDefaults(opts *rootOptions, country, state string) (string, string) {
	if country == "" {
		country = opts.config.DefaultCountry
		if state == "" {
			state = opts.config.DefaultState
		}
	}
	return country, state
}

func newAddUtilitiesCmd(opts *rootOptions) *cobra.Command {
	var (
		country, state, location string
		electricity              float64
		electricityUnit          string
		heatSource               string
		heatUsage                float64
		heatUnit                 string
	)

	cmd := &cobra.Command{
		Use:   "utilities",
		Short: "Add a utilities entry (grid electricity and heat)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			country, state = regionDefaults(opts, country, state)
			entry := engine.UtilitiesEntry{
				ID:               store.NewEntryID(),
				Date:             time.Now().UTC(),
				Location:         location,
				Country:          country,
				State:            state,
				ElectricityUsage: electricity,
				ElectricityUnit:  units.Unit(electricityUnit),
				HeatSource:       heatSource,
				HeatUsage:        heatUsage,
				HeatUnit:         units.Unit(heatUnit),
			}
			return mutateStore(opts, func(c *engine.Collections) error {
				c.Utilities = append(c.Utilities, entry)
				fmt.Fprintln(cmd.OutOrStdout(), entry.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "country of the site")
	cmd.Flags().StringVar(&state, "state", "", "US state or Canadian province")
	cmd.Flags().StringVar(&location, "location", "", "free-form site label")
	cmd.Flags().Float64Var(&electricity, "electricity", 0, "electricity usage")
	cmd.Flags().StringVar(&electricityUnit, "electricity-unit", "", "electricity unit (default kWh)")
	cmd.Flags().StringVar(&heatSource, "heat-source", "", "heat source (Natural Gas, Heating Oil, Propane)")
	cmd.Flags().Float64Var(&heatUsage, "heat-usage", 0, "heat usage in the source's unit")
	cmd.Flags().StringVar(&heatUnit, "heat-unit", "", "heat unit override")
	return cmd
}

func newAddFuelCmd(opts *rootOptions) *cobra.Command {
	var (
		equipment, fuelType, method, fuelUnit, vehicleType, distanceUnit string
		amount, cost, pricePerGallon, distance                           float64
	)

	cmd := &cobra.Command{
		Use:   "fuel",
		Short: "Add a vehicle/equipment fuel entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			entry := engine.FuelEntry{
				ID:             store.NewEntryID(),
				Date:           time.Now().UTC(),
				EquipmentType:  equipment,
				FuelType:       fuelType,
				Method:         engine.CalcMethod(method),
				FuelAmount:     amount,
				FuelUnit:       units.Unit(fuelUnit),
				Cost:           cost,
				PricePerGallon: pricePerGallon,
				Distance:       distance,
				DistanceUnit:   units.Unit(distanceUnit),
				VehicleType:    vehicleType,
			}
			return mutateStore(opts, func(c *engine.Collections) error {
				c.Fuel = append(c.Fuel, entry)
				fmt.Fprintln(cmd.OutOrStdout(), entry.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&equipment, "equipment", "", "equipment or vehicle label")
	cmd.Flags().StringVar(&fuelType, "fuel-type", "", "fuel type (exact factor table key)")
	cmd.Flags().StringVar(&method, "method", "amount", "calculation method (amount, cost, mileage)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "fuel amount")
	cmd.Flags().StringVar(&fuelUnit, "unit", "", "fuel unit (default gallon)")
	cmd.Flags().Float64Var(&cost, "cost", 0, "money spent on fuel")
	cmd.Flags().Float64Var(&pricePerGallon, "price-per-gallon", 0, "price paid per gallon")
	cmd.Flags().Float64Var(&distance, "distance", 0, "distance driven")
	cmd.Flags().StringVar(&distanceUnit, "distance-unit", "", "distance unit (default mile)")
	cmd.Flags().StringVar(&vehicleType, "vehicle-type", "", "vehicle type for mileage method")
	return cmd
}

func newAddEVCmd(opts *rootOptions) *cobra.Command {
	var (
		country, state, method, energyUnit, vehicleType, distanceUnit string
		energy, distance, cost, pricePerKWh                           float64
	)

	cmd := &cobra.Command{
		Use:   "ev",
		Short: "Add an EV charging entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			country, state = regionDefaults(opts, country, state)
			entry := engine.EVChargingEntry{
				ID:           store.NewEntryID(),
				Date:         time.Now().UTC(),
				Country:      country,
				State:        state,
				Method:       engine.CalcMethod(method),
				Energy:       energy,
				EnergyUnit:   units.Unit(energyUnit),
				Distance:     distance,
				DistanceUnit: units.Unit(distanceUnit),
				VehicleType:  vehicleType,
				Cost:         cost,
				PricePerKWh:  pricePerKWh,
			}
			return mutateStore(opts, func(c *engine.Collections) error {
				c.EVCharging = append(c.EVCharging, entry)
				fmt.Fprintln(cmd.OutOrStdout(), entry.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "country where charging happened")
	cmd.Flags().StringVar(&state, "state", "", "US state or Canadian province")
	cmd.Flags().StringVar(&method, "method", "amount", "calculation method (amount, mileage, cost)")
	cmd.Flags().Float64Var(&energy, "energy", 0, "charging energy")
	cmd.Flags().StringVar(&energyUnit, "energy-unit", "", "energy unit (default kWh)")
	cmd.Flags().Float64Var(&distance, "distance", 0, "distance driven")
	cmd.Flags().StringVar(&distanceUnit, "distance-unit", "", "distance unit (default mile)")
	cmd.Flags().StringVar(&vehicleType, "vehicle-type", "", "EV type for mileage method")
	cmd.Flags().Float64Var(&cost, "cost", 0, "money spent on charging")
	cmd.Flags().Float64Var(&pricePerKWh, "price-per-kwh", 0, "price paid per kWh")
	return cmd
}

func newAddHotelCmd(opts *rootOptions) *cobra.Command {
	var (
		country, state, roomType string
		nights, rooms            int
	)

	cmd := &cobra.Command{
		Use:   "hotel",
		Short: "Add a hotel/housing entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			country, state = regionDefaults(opts, country, state)
			entry := engine.HotelEntry{
				ID:       store.NewEntryID(),
				Date:     time.Now().UTC(),
				Country:  country,
				State:    state,
				RoomType: roomType,
				Nights:   nights,
				Rooms:    rooms,
			}
			return mutateStore(opts, func(c *engine.Collections) error {
				c.Hotels = append(c.Hotels, entry)
				fmt.Fprintln(cmd.OutOrStdout(), entry.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "country of the stay")
	cmd.Flags().StringVar(&state, "state", "", "US state or Canadian province")
	cmd.Flags().StringVar(&roomType, "room-type", "", "room type (Economy, Midscale, Upscale, Luxury, ...)")
	cmd.Flags().IntVar(&nights, "nights", 0, "number of nights")
	cmd.Flags().IntVar(&rooms, "rooms", 1, "number of rooms")
	return cmd
}

func newAddTravelCmd(opts *rootOptions) *cobra.Command {
	var (
		transportType, distanceUnit string
		travelers                   int
		distance                    float64
	)

	cmd := &cobra.Command{
		Use:   "travel",
		Short: "Add a commercial travel entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			entry := engine.TravelEntry{
				ID:            store.NewEntryID(),
				Date:          time.Now().UTC(),
				TransportType: transportType,
				Travelers:     travelers,
				Distance:      distance,
				DistanceUnit:  units.Unit(distanceUnit),
			}
			return mutateStore(opts, func(c *engine.Collections) error {
				c.CommercialTravel = append(c.CommercialTravel, entry)
				fmt.Fprintln(cmd.OutOrStdout(), entry.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&transportType, "transport", "Flight", "transport type (Flight, Rail, Bus, Ferry)")
	cmd.Flags().IntVar(&travelers, "travelers", 1, "number of travelers")
	cmd.Flags().Float64Var(&distance, "distance", 0, "one-way trip distance (0 = unknown, flights only)")
	cmd.Flags().StringVar(&distanceUnit, "distance-unit", "", "distance unit (default mile)")
	return cmd
}

func newAddCharterCmd(opts *rootOptions) *cobra.Command {
	var (
		aircraftClass, method, fuelUnit string
		flightHours, fuelAmount         float64
	)

	cmd := &cobra.Command{
		Use:   "charter",
		Short: "Add a charter flight entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			entry := engine.CharterEntry{
				ID:            store.NewEntryID(),
				Date:          time.Now().UTC(),
				AircraftClass: aircraftClass,
				Method:        engine.CalcMethod(method),
				FlightHours:   flightHours,
				FuelAmount:    fuelAmount,
				FuelUnit:      units.Unit(fuelUnit),
			}
			return mutateStore(opts, func(c *engine.Collections) error {
				c.CharterFlights = append(c.CharterFlights, entry)
				fmt.Fprintln(cmd.OutOrStdout(), entry.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&aircraftClass, "aircraft-class", "", "aircraft class (Light Jet, Turboprop, ...)")
	cmd.Flags().StringVar(&method, "method", "amount", "calculation method (amount, fuel)")
	cmd.Flags().Float64Var(&flightHours, "hours", 0, "flight hours")
	cmd.Flags().Float64Var(&fuelAmount, "fuel", 0, "jet fuel burned")
	cmd.Flags().StringVar(&fuelUnit, "fuel-unit", "", "fuel unit (default gallon)")
	return cmd
}

func newEntriesListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "list [category]",
		Short:     "List stored entries, optionally for one category",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: categoryNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := store.NewJSONStore(opts.resolveStorePath(), opts.logger)
			collections, err := repo.Load()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				filtered, err := filterCategory(collections, engine.Category(args[0]))
				if err != nil {
					return err
				}
				collections = filtered
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(collections)
		},
	}
}

func newEntriesRmCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <category> <id>",
		Short: "Remove one entry by category and ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			category, id := engine.Category(args[0]), args[1]
			return mutateStore(opts, func(c *engine.Collections) error {
				return removeEntry(c, category, id)
			})
		},
	}
}

func categoryNames() []string {
	names := make([]string, len(engine.Categories))
	for i, c := range engine.Categories {
		names[i] = string(c)
	}
	return names
}

func filterCategory(c engine.Collections, category engine.Category) (engine.Collections, error) {
	var out engine.Collections
	switch category {
	case engine.CategoryUtilities:
		out.Utilities = c.Utilities
	case engine.CategoryFuel:
		out.Fuel = c.Fuel
	case engine.CategoryEVCharging:
		out.EVCharging = c.EVCharging
	case engine.CategoryHotels:
		out.Hotels = c.Hotels
	case engine.CategoryCommercialTravel:
		out.CommercialTravel = c.CommercialTravel
	case engine.CategoryCharterFlights:
		out.CharterFlights = c.CharterFlights
	default:
		return out, fmt.Errorf("unknown category %q", category)
	}
	return out, nil
}

func removeEntry(c *engine.Collections, category engine.Category, id string) error {
	removed := false
	switch category {
	case engine.CategoryUtilities:
		c.Utilities, removed = removeByID(c.Utilities, func(e engine.UtilitiesEntry) string { return e.ID }, id)
	case engine.CategoryFuel:
		c.Fuel, removed = removeByID(c.Fuel, func(e engine.FuelEntry) string { return e.ID }, id)
	case engine.CategoryEVCharging:
		c.EVCharging, removed = removeByID(c.EVCharging, func(e engine.EVChargingEntry) string { return e.ID }, id)
	case engine.CategoryHotels:
		c.Hotels, removed = removeByID(c.Hotels, func(e engine.HotelEntry) string { return e.ID }, id)
	case engine.CategoryCommercialTravel:
		c.CommercialTravel, removed = removeByID(c.CommercialTravel, func(e engine.TravelEntry) string { return e.ID }, id)
	case engine.CategoryCharterFlights:
		c.CharterFlights, removed = removeByID(c.CharterFlights, func(e engine.CharterEntry) string { return e.ID }, id)
	default:
		return fmt.Errorf("unknown category %q", category)
	}
	if !removed {
		return fmt.Errorf("no %s entry with ID %q", category, id)
	}
	return nil
}

func removeByID[E any](entries []E, entryID func(E) string, id string) ([]E, bool) {
	out := entries[:0]
	removed := false
	for _, e := range entries {
		if entryID(e) == id {
			removed = true
			continue
		}
		out = append(out, e)
	}
	return out, removed
}
