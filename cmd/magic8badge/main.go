package main

import (
	"time"

	"magic8badge/board"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot", board.Selected.Name(), "mcu", board.Selected.MCUName())

	hw, err := board.Init()
	if err != nil {
		println("board init failed:", err.Error())
		for {
			time.Sleep(time.Second)
		}
	}
	if hw.I2C != nil {
		i2c := board.Selected.I2C()
		println("i2c ready scl", i2c.SCL.String(), "sda", i2c.SDA.String())
	}

	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()

	for t := range tick.C {
		if hw.StatusLED != nil {
			hw.StatusLED.Toggle()
		}
		println(t.Format("15:04:05"), "Heartbeat")
	}
}
