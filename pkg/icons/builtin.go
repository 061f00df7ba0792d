package icons

// icNoneSet uses plain text, for fonts without icon glyphs.
func icNoneSet() Set {
	return Set{
		"cpu":          {"CPU"},
		"memory":       {"MEM"},
		"swap":         {"SWAP"},
		"disk":         {"DISK"},
		"load":         {"LOAD"},
		"uptime":       {"UP"},
		"time":         {"TIME"},
		"update":       {"UPD"},
		"net_wireless": {"W"},
		"volume":       {"MUTE", "VOL", "VOL+"},
		"bat":          {"BAT!", "BAT", "BAT", "BAT+", "FULL"},
	}
}

// icAwesome6Set targets Font Awesome 6 Free.
func icAwesome6Set() Set {
	return Set{
		"cpu":          {"\uF2DB"}, // microchip
		"memory":       {"\uF538"}, // memory
		"swap":         {"\uF0EC"}, // right-left
		"disk":         {"\uF0A0"}, // hard-drive
		"load":         {"\uF3FD"}, // gauge-high
		"uptime":       {"\uF253"}, // hourglass-end
		"time":         {"\uF017"}, // clock
		"update":       {"\uF021"}, // arrows-rotate
		"net_wireless": {"\uF1EB"}, // wifi
		"volume":       {"\uF026", "\uF027", "\uF028"},
		"bat":          {"\uF244", "\uF243", "\uF242", "\uF241", "\uF240"},
	}
}

// icMaterialNFSet targets the Material Design range of Nerd Fonts 3.
func icMaterialNFSet() Set {
	return Set{
		"cpu":          {"\U000F035B"},
		"memory":       {"\U000F061A"},
		"swap":         {"\U000F04E1"},
		"disk":         {"\U000F02CA"},
		"load":         {"\U000F029A"},
		"uptime":       {"\U000F051F"},
		"time":         {"\U000F0954"},
		"update":       {"\U000F06B0"},
		"net_wireless": {"\U000F05A9"},
		"volume":       {"\U000F0581", "\U000F057F", "\U000F0580", "\U000F057E"},
		"bat": {
			"\U000F008E", "\U000F007A", "\U000F007C", "\U000F007E",
			"\U000F0080", "\U000F0082", "\U000F0079",
		},
	}
}
