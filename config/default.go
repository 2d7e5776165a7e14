package config

import "chargesim/types"

func component(kind, name string, value Value, pins ...string) ComponentConfig {
	return ComponentConfig{Type: kind, Name: name, Value: value, Pins: pins}
}

// DefaultCircuits 三个参考电路：纯电阻串并联、电阻桥、带电容的电阻桥
func DefaultCircuits() []CircuitConfig {
	return []CircuitConfig{
		{
			Name:  "series-parallel",
			Nodes: []string{"P", "N", "R124", "R23"},
			Components: []ComponentConfig{
				component("battery", "Bat", SourceVoltage(), "P", "N"),
				component("resistor", "R1", Number(6), "P", "R124"),
				component("resistor", "R2", Number(4), "R124", "R23"),
				component("resistor", "R3", Number(8), "R23", "N"),
				component("resistor", "R4", Number(12), "R124", "N"),
			},
		},
		{
			Name:  "bridge",
			Nodes: []string{"P", "N", "L", "R"},
			Components: []ComponentConfig{
				component("battery", "Bat", SourceVoltage(), "P", "N"),
				component("resistor", "R1", Number(150), "P", "L"),
				component("resistor", "R2", Number(50), "P", "R"),
				component("resistor", "R3", Number(100), "L", "R"),
				component("resistor", "R4", Number(300), "L", "N"),
				component("resistor", "R5", Number(250), "R", "N"),
			},
		},
		{
			Name:  "capacitor-bridge",
			Nodes: []string{"P", "N", "L", "R"},
			Components: []ComponentConfig{
				component("battery", "Bat", SourceVoltage(), "P", "N"),
				component("resistor", "R1", Number(150), "P", "L"),
				component("resistor", "R2", Number(50), "P", "R"),
				component("capacitor", "C3", Number(1.0), "L", "R"),
				component("resistor", "R4", Number(300), "L", "N"),
				component("capacitor", "C5", Number(0.75), "R", "N"),
			},
		},
	}
}

// Default 默认配置
func Default() *Config {
	return &Config{
		Steps:    types.DefaultSteps,
		Lines:    types.DefaultLines,
		TimeStep: types.DefaultTimeStep,
		Voltage:  types.DefaultVoltage,
		Circuits: DefaultCircuits(),
	}
}
