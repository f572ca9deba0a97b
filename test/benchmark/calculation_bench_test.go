// Package benchmark provides performance benchmarks for the emission
// calculation engine.
//
// Run with: go test ./test/benchmark/... -bench=. -benchmem
package benchmark

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/reellab/setcarbon/internal/engine"
	"github.com/reellab/setcarbon/internal/factors"
)

// maxLatencyMs is the maximum acceptable latency for a full calculation pass
// over a realistic entry set.
const maxLatencyMs = 100

func benchCollections(entriesPerCategory int) engine.Collections {
	var c engine.Collections
	for i := 0; i < entriesPerCategory; i++ {
		id := fmt.Sprintf("e%d", i)
		c.Utilities = append(c.Utilities, engine.UtilitiesEntry{
			ID: id, Country: "United States", State: "California",
			ElectricityUsage: 1000, HeatSource: "Natural Gas", HeatUsage: 20,
		})
		c.Fuel = append(c.Fuel, engine.FuelEntry{
			ID: id, EquipmentType: "Generator", FuelType: "Diesel Fuel",
			Method: engine.MethodAmount, FuelAmount: 50,
		})
		c.EVCharging = append(c.EVCharging, engine.EVChargingEntry{
			ID: id, Country: "United States", State: "California",
			Method: engine.MethodAmount, Energy: 120,
		})
		c.Hotels = append(c.Hotels, engine.HotelEntry{
			ID: id, Country: "United States", State: "Georgia",
			RoomType: "Midscale", Nights: 5, Rooms: 3,
		})
		c.CommercialTravel = append(c.CommercialTravel, engine.TravelEntry{
			ID: id, TransportType: "Flight", Distance: 1000, Travelers: 2,
		})
		c.CharterFlights = append(c.CharterFlights, engine.CharterEntry{
			ID: id, AircraftClass: "Light Jet", Method: engine.MethodAmount, FlightHours: 2,
		})
	}
	return c
}

// BenchmarkCalculate measures a full six-category calculation pass.
func BenchmarkCalculate(b *testing.B) {
	eng := engine.New(zerolog.Nop())
	c := benchCollections(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eng.Calculate(c)
	}
}

// BenchmarkCalculate_Small measures the pass over a small entry set.
func BenchmarkCalculate_Small(b *testing.B) {
	eng := engine.New(zerolog.Nop())
	c := benchCollections(5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eng.Calculate(c)
	}
}

// BenchmarkElectricityFactor measures the regional grid factor lookup.
func BenchmarkElectricityFactor(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		factors.ElectricityFactor("United States", "California")
	}
}

// BenchmarkElectricityFactor_Fallback measures the lookup when both state and
// country miss and the global average applies.
func BenchmarkElectricityFactor_Fallback(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		factors.ElectricityFactor("Unknown", "Unknown")
	}
}

// TestLatencyRequirement_FullPass verifies a 600-entry calculation pass stays
// under the latency ceiling.
func TestLatencyRequirement_FullPass(t *testing.T) {
	eng := engine.New(zerolog.Nop())
	c := benchCollections(100)

	start := time.Now()
	eng.Calculate(c)
	elapsed := time.Since(start)

	if elapsed.Milliseconds() > maxLatencyMs {
		t.Errorf("calculation pass took %v, exceeds %dms limit", elapsed, maxLatencyMs)
	}
}

// TestConcurrentCalculate verifies the engine is safe and fast under
// concurrent calculation passes.
func TestConcurrentCalculate(t *testing.T) {
	const goroutines = 150

	eng := engine.New(zerolog.Nop())
	c := benchCollections(10)

	var wg sync.WaitGroup
	errs := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			out := eng.Calculate(c)
			if time.Since(start).Milliseconds() > maxLatencyMs {
				errs <- fmt.Errorf("exceeded latency under concurrent load")
			}
			if len(out.EntryErrors()) != 0 {
				errs <- fmt.Errorf("unexpected entry errors under concurrent load")
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
