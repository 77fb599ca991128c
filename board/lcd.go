//go:build tinygo

package board

import (
	"errors"
	"machine"

	"tinygo.org/x/drivers/hd44780i2c"
)

// ConfigureLCD sets up I2C0 on its default pins and attempts to initialize
// an HD44780 16x2 display on the common backpack addresses (0x27, 0x3F).
func ConfigureLCD() (*hd44780i2c.Device, error) {
	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA: machine.I2C0_SDA_PIN,
		SCL: machine.I2C0_SCL_PIN,
	})
	if err != nil {
		return nil, errors.New("configure I2C:" + err.Error())
	}

	for _, addr := range []uint16{0x27, 0x3F} {
		// Skip addresses nothing acknowledges.
		if err := machine.I2C0.Tx(addr, nil, []byte{0}); err != nil {
			continue
		}
		dev := hd44780i2c.New(machine.I2C0, uint8(addr))
		dev.Configure(hd44780i2c.Config{
			Width:  16,
			Height: 2,
		})
		return &dev, nil
	}
	return nil, errors.New("LCD not found on addresses: 0x27, 0x3f")
}
