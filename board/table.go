package board

// Pin maps for the LilyGO cellular boards. Each entry holds only the fields
// the board defines; family members take their shared pins from families.

var profiles = map[ID]Profile{
	TA7670: {
		Macro:   "LILYGO_T_A7670",
		Name:    "T-A7670X",
		URL:     "https://www.lilygo.cc/products/t-sim-a7670e",
		SoC:     ESP32,
		Chipset: ChipsetA7670,
		Notes:   []string{"solar ADC (IO36) is only connected on V1.4"},
		Modem: ModemUART{
			Baud: 115200, Port: "uart1",
			TX: GPIO(26), RX: GPIO(27), DTR: GPIO(25), Ring: GPIO(33),
		},
		Power: Power{
			PowerOn:  GPIO(12),
			PowerKey: GPIO(4),
			Reset:    GPIO(5), ResetLevel: ActiveHigh,
		},
		SPI: SPI{MISO: GPIO(2), MOSI: GPIO(15), SCK: GPIO(14)},
		SD:  SD{CS: GPIO(13)},
		GPS: GPS{Enable: NotConnected},
		ADC: ADC{Battery: GPIO(35), Solar: GPIO(36)},
	},

	TCallA7670V10: {
		Macro:   "LILYGO_T_CALL_A7670_V1_0",
		Name:    "T-Call A7670 V1.0",
		URL:     "https://lilygo.cc/products/t-call-v1-4",
		SoC:     ESP32,
		Chipset: ChipsetA7670,
		Notes:   []string{"no modem power switch; the power-on pin is the LED power indicator"},
		Modem: ModemUART{
			Baud: 115200, Port: "uart1",
			TX: GPIO(26), RX: GPIO(25), DTR: GPIO(14), Ring: GPIO(13),
		},
		Power: Power{
			PowerOn:  GPIO(12),
			PowerKey: GPIO(4),
			Reset:    GPIO(27), ResetLevel: ActiveLow,
			LED: GPIO(12),
		},
		GPS: GPS{Enable: NotConnected},
	},

	TCallA7670V11: {
		Macro:   "LILYGO_T_CALL_A7670_V1_1",
		Name:    "T-Call A7670 V1.1",
		SoC:     ESP32,
		Status:  StatusIncompatible,
		Reason:  "T-Call A7670 V1.0 and V1.1 have different pin maps and cannot be used interchangeably",
		Chipset: ChipsetA7670,
		Modem: ModemUART{
			Baud: 115200, Port: "uart1",
			TX: GPIO(27), RX: GPIO(26), DTR: GPIO(32), Ring: GPIO(33),
		},
		Power: Power{
			PowerOn:  GPIO(13),
			PowerKey: GPIO(4),
			Reset:    GPIO(5), ResetLevel: ActiveLow,
			LED: GPIO(13),
		},
		GPS: GPS{Enable: NotConnected},
	},

	TSIM7670GS3: {
		Macro:   "LILYGO_T_SIM7670G_S3",
		Name:    "T-SIM7670G S3",
		URL:     "https://lilygo.cc/products/t-sim-7670g-s3",
		SoC:     ESP32S3,
		Chipset: ChipsetSIM7672,
		Notes:   []string{"no modem power switch; the power-on pin is the LED power indicator"},
		Modem: ModemUART{
			Baud: 115200, Port: "uart1",
			TX: GPIO(11), RX: GPIO(10), DTR: GPIO(9), Ring: GPIO(3),
		},
		Power: Power{
			PowerOn:  GPIO(12),
			PowerKey: GPIO(18),
			Reset:    GPIO(17), ResetLevel: ActiveLow,
			LED: GPIO(12),
		},
		SPI: SPI{MISO: GPIO(47), MOSI: GPIO(14), SCK: GPIO(21)},
		SD:  SD{CS: GPIO(13)},
		GPS: GPS{Enable: GPIO(4), EnableLevel: ActiveHigh},
		ADC: ADC{Battery: GPIO(4), Solar: GPIO(5)},
	},

	TA7608X: {
		Macro:   "LILYGO_T_A7608X",
		Name:    "T-A7608X",
		URL:     "https://lilygo.cc/products/t-a7608e-h?variant=42860532433077",
		SoC:     ESP32,
		Chipset: ChipsetA7608,
		Notes: []string{
			"T-A7608-V2: the power-on pin drives the onboard LED",
			"T-A7608-V2: the modem reset pin is not connected",
			"solar ADC is only present on v1.1 and V2",
		},
		Modem: ModemUART{
			Baud: 115200, Port: "uart1",
			TX: GPIO(26), RX: GPIO(27), DTR: GPIO(25), Ring: GPIO(33),
		},
		Power: Power{
			PowerOn:  GPIO(12),
			PowerKey: GPIO(4),
			Reset:    GPIO(5), ResetLevel: ActiveHigh,
		},
		SPI: SPI{MISO: GPIO(2), MOSI: GPIO(15), SCK: GPIO(14)},
		SD:  SD{CS: GPIO(13)},
		GPS: GPS{Enable: GPIO(ModemAUXVDD), EnableLevel: ActiveHigh},
		ADC: ADC{Battery: GPIO(35), Solar: GPIO(34)},
	},

	TA7608XS3: {
		Macro:   "LILYGO_T_A7608X_S3",
		Name:    "T-A7608X S3",
		URL:     "https://lilygo.cc/products/t-a7608e-h?variant=43932699033781",
		SoC:     ESP32S3,
		Chipset: ChipsetA7608,
		Notes:   []string{"solar ADC is only present on v1.1"},
		Modem: ModemUART{
			Baud: 115200, Port: "uart1",
			TX: GPIO(17), RX: GPIO(18), DTR: GPIO(7), Ring: GPIO(6),
		},
		Power: Power{
			PowerKey: GPIO(15),
			Reset:    GPIO(16), ResetLevel: ActiveLow,
		},
		SPI: SPI{MISO: GPIO(47), MOSI: GPIO(14), SCK: GPIO(21)},
		SD:  SD{CS: GPIO(13)},
		GPS: GPS{Enable: GPIO(ModemAUXVDD), EnableLevel: ActiveHigh},
		ADC: ADC{Battery: GPIO(4), Solar: GPIO(3)},
	},

	TA7608XDCS3: {
		Macro:   "LILYGO_T_A7608X_DC_S3",
		Name:    "T-A7608X DC S3",
		SoC:     ESP32S3,
		Status:  StatusIncompatible,
		Reason:  "pin map does not match released hardware revisions",
		Chipset: ChipsetA7608,
		Modem: ModemUART{
			Port: "uart1",
			TX:   GPIO(41), RX: GPIO(42), DTR: GPIO(5), Ring: GPIO(6),
			RTS: GPIO(1), CTS: GPIO(2),
		},
		Power: Power{
			PowerKey: GPIO(38),
			Reset:    GPIO(40), ResetLevel: ActiveLow,
		},
		GPS: GPS{Enable: GPIO(ModemAUXVDD), EnableLevel: ActiveHigh},
	},

	SIM7000G: {
		Macro:   "LILYGO_SIM7000G",
		Name:    "T-SIM7000G",
		URL:     "https://lilygo.cc/products/t-sim7000g",
		SoC:     ESP32,
		Chipset: ChipsetSIM7000SSL,
		Modem: ModemUART{
			Port: "uart1",
			TX:   GPIO(27), RX: GPIO(26), DTR: GPIO(25), Ring: GPIO(33),
		},
		Power: Power{
			PowerKey: GPIO(4),
			LED:      GPIO(12), LEDLevel: ActiveLow,
		},
		GPS: GPS{Enable: GPIO(4), EnableLevel: ActiveLow},
	},

	A7670XS3: {
		Macro:   "LILYGO_A7670X_S3",
		Name:    "A7670X S3",
		SoC:     ESP32S3,
		Chipset: ChipsetA7670,
		Modem: ModemUART{
			Baud: 115200, Port: "uart1",
			TX: GPIO(4), RX: GPIO(5), DTR: GPIO(7), Ring: GPIO(6),
		},
		Power: Power{
			PowerKey: GPIO(46),
			LED:      GPIO(37), LEDLevel: ActiveHigh,
		},
		SPI: SPI{MISO: GPIO(13), MOSI: GPIO(11), SCK: GPIO(12)},
		SD:  SD{CS: GPIO(10)},
		I2C: I2C{SDA: GPIO(3), SCL: GPIO(2)},
		GPS: GPS{
			RX: GPIO(15), TX: GPIO(16), PPS: GPIO(17),
			Enable: GPIO(1), EnableLevel: ActiveHigh,
		},
		Camera: Camera{
			PWDN: NotConnected, Reset: NotConnected,
			XCLK: GPIO(36), SIOD: GPIO(40), SIOC: GPIO(1),
			VSYNC: GPIO(42), HREF: GPIO(9), PCLK: GPIO(41),
			Y9: GPIO(45), Y8: GPIO(39), Y7: GPIO(38), Y6: GPIO(7),
			Y5: GPIO(35), Y4: GPIO(48), Y3: GPIO(47), Y2: GPIO(14),
		},
		ADC: ADC{Battery: GPIO(8), Solar: GPIO(18)},
	},

	TPCIeA767X: {
		Macro:   "LILYGO_T_PCIE_A767X",
		Name:    "T-PCIE A767X",
		URL:     "https://lilygo.cc/products/a-t-pcie?variant=42335922094261",
		SoC:     ESP32,
		Chipset: ChipsetA7670,
		Notes:   []string{"modem reset is not wired; the reset pin is a dummy on the LED"},
		Modem: ModemUART{
			Port: "uart1",
			TX:   GPIO(27), RX: GPIO(26), DTR: GPIO(32), Ring: GPIO(33),
		},
		Power: Power{
			PowerOn:  GPIO(25),
			PowerKey: GPIO(4),
			Reset:    GPIO(12), ResetLevel: ActiveLow,
			LED:    GPIO(12),
			PMUIRQ: GPIO(35),
		},
		GPS: GPS{Enable: GPIO(4), EnableLevel: ActiveLow},
	},

	TPCIeSIM7000G: {
		Macro:   "LILYGO_T_PCIE_SIM7000G",
		Name:    "T-PCIE SIM7000G",
		URL:     "https://lilygo.cc/products/a-t-pcie?variant=42335921897653",
		SoC:     ESP32,
		Family:  FamilyPCIe,
		Chipset: ChipsetSIM7000SSL,
	},

	TPCIeSIM7080G: {
		Macro:   "LILYGO_T_PCIE_SIM7080G",
		Name:    "T-PCIE SIM7080G",
		URL:     "https://lilygo.cc/products/a-t-pcie?variant=42335921995957",
		SoC:     ESP32,
		Family:  FamilyPCIe,
		Chipset: ChipsetSIM7080,
	},

	TETHEliteA7670X: {
		Macro:   "LILYGO_T_ETH_ELITE_A7670X",
		Name:    "T-ETH-Elite A7670X",
		URL:     "https://lilygo.cc/products/t-eth-elite-1?variant=44498205049013",
		SoC:     ESP32S3,
		Family:  FamilyETHElite,
		Chipset: ChipsetA7670,
	},
}

// families holds the pins shared by every member of a family.
var families = map[Family]Profile{
	FamilyPCIe: {
		Modem: ModemUART{
			Port: "uart1",
			TX:   GPIO(27), RX: GPIO(26), DTR: GPIO(32), Ring: GPIO(33),
		},
		Power: Power{
			PowerOn:  GPIO(25),
			PowerKey: GPIO(4),
			LED:      GPIO(12), LEDLevel: ActiveLow,
			PMUIRQ: GPIO(35),
		},
	},

	FamilyETHElite: {
		Modem: ModemUART{
			Port: "uart1",
			TX:   GPIO(6), RX: GPIO(4), DTR: GPIO(5), Ring: GPIO(1),
		},
		Power: Power{
			PowerKey: GPIO(3),
			LED:      GPIO(38), LEDLevel: ActiveHigh,
		},
		Ethernet: Ethernet{
			MISO: GPIO(47), MOSI: GPIO(21), SCLK: GPIO(48),
			CS: GPIO(45), INT: GPIO(14), RST: NotConnected,
			PHYAddr: 1,
		},
		// The SD card sits on the board SPI bus.
		SPI: SPI{MISO: GPIO(9), MOSI: GPIO(11), SCK: GPIO(10)},
		SD:  SD{CS: GPIO(12)},
		I2C: I2C{SDA: GPIO(17), SCL: GPIO(18)},
		GPS: GPS{RX: GPIO(39), TX: GPIO(42)},
		ADC: ADC{Buttons: GPIO(7)},
	},
}
