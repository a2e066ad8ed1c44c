// Calibration tables for the VADC thermistor and battery channels
//
// Copyright (C) 2026  PMIC VADC Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package vadc

// Tables are read-only. Callers must not modify their elements.
var (
	// BTMThreshold maps battery temperature in 0.1 degC to thermistor
	// voltage in mV for the reference battery pack. The table is descending in y.
	BTMThreshold = Table{
		{-400, 1676}, {-390, 1670}, {-380, 1664}, {-370, 1658}, {-360, 1651},
		{-350, 1645}, {-340, 1638}, {-330, 1630}, {-320, 1623}, {-310, 1615},
		{-300, 1607}, {-290, 1599}, {-280, 1590}, {-270, 1582}, {-260, 1573},
		{-250, 1563}, {-240, 1554}, {-230, 1544}, {-220, 1534}, {-210, 1523},
		{-200, 1513}, {-190, 1502}, {-180, 1491}, {-170, 1479}, {-160, 1468},
		{-150, 1456}, {-140, 1444}, {-130, 1432}, {-120, 1419}, {-110, 1406},
		{-100, 1393}, {-90, 1380}, {-80, 1367}, {-70, 1354}, {-60, 1340},
		{-50, 1326}, {-40, 1312}, {-30, 1298}, {-20, 1284}, {-10, 1270},
		{0, 1256}, {10, 1241}, {20, 1227}, {30, 1212}, {40, 1198},
		{50, 1183}, {60, 1168}, {70, 1154}, {80, 1139}, {90, 1125},
		{100, 1110}, {110, 1096}, {120, 1082}, {130, 1067}, {140, 1053},
		{150, 1039}, {160, 1025}, {170, 1011}, {180, 997}, {190, 983},
		{200, 970}, {210, 957}, {220, 943}, {230, 930}, {240, 917},
		{250, 905}, {260, 892}, {270, 880}, {280, 868}, {290, 856},
		{300, 844}, {310, 832}, {320, 821}, {330, 810}, {340, 799},
		{350, 788}, {360, 778}, {370, 767}, {380, 757}, {390, 747},
		{400, 738}, {410, 728}, {420, 719}, {430, 710}, {440, 701},
		{450, 692}, {460, 684}, {470, 676}, {480, 668}, {490, 660},
		{500, 652}, {510, 645}, {520, 637}, {530, 630}, {540, 623},
		{550, 616}, {560, 610}, {570, 603}, {580, 597}, {590, 591},
		{600, 585}, {610, 579}, {620, 574}, {630, 568}, {640, 563},
		{650, 558}, {660, 552}, {670, 548}, {680, 543}, {690, 538},
		{700, 533}, {710, 529}, {720, 525}, {730, 521}, {740, 517},
		{750, 513}, {760, 509}, {770, 505}, {780, 501}, {790, 498},
		{800, 494}, {810, 491}, {820, 488}, {830, 485}, {840, 482},
		{850, 479}, {860, 476}, {870, 473}, {880, 470}, {890, 467},
		{900, 465}, {910, 462}, {920, 460}, {930, 458}, {940, 455},
		{950, 453}, {960, 451}, {970, 449}, {980, 447}, {990, 444},
		{1000, 442}, {1010, 441}, {1020, 439}, {1030, 437}, {1040, 435},
		{1050, 433}, {1060, 432}, {1070, 430}, {1080, 429}, {1090, 427},
		{1100, 425}, {1110, 424}, {1120, 423}, {1130, 421}, {1140, 420},
		{1150, 419}, {1160, 417}, {1170, 416}, {1180, 415}, {1190, 414},
		{1200, 412}, {1210, 411}, {1220, 410}, {1230, 409}, {1240, 408},
		{1250, 407},
	}

	// QRDBTMThreshold is the QRD reference board battery table
	// (0.1 degC to mV).
	QRDBTMThreshold = Table{
		{-400, 1676}, {-390, 1670}, {-380, 1664}, {-370, 1658}, {-360, 1651},
		{-350, 1645}, {-340, 1638}, {-330, 1630}, {-320, 1623}, {-310, 1615},
		{-300, 1607}, {-290, 1599}, {-280, 1590}, {-270, 1582}, {-260, 1573},
		{-250, 1563}, {-240, 1554}, {-230, 1544}, {-220, 1534}, {-210, 1523},
		{-200, 1513}, {-190, 1502}, {-180, 1491}, {-170, 1479}, {-160, 1468},
		{-150, 1456}, {-140, 1444}, {-130, 1432}, {-120, 1419}, {-110, 1406},
		{-100, 1393}, {-90, 1380}, {-80, 1367}, {-70, 1354}, {-60, 1340},
		{-50, 1326}, {-40, 1312}, {-30, 1298}, {-20, 1284}, {-10, 1270},
		{0, 1256}, {10, 1241}, {20, 1227}, {30, 1212}, {40, 1198},
		{50, 1183}, {60, 1168}, {70, 1154}, {80, 1139}, {90, 1125},
		{100, 1110}, {110, 1096}, {120, 1082}, {130, 1067}, {140, 1053},
		{150, 1039}, {160, 1025}, {170, 1011}, {180, 997}, {190, 983},
		{200, 970}, {210, 957}, {220, 943}, {230, 930}, {240, 917},
		{250, 905}, {260, 892}, {270, 880}, {280, 868}, {290, 856},
		{300, 844}, {310, 832}, {320, 821}, {330, 810}, {340, 799},
		{350, 788}, {360, 778}, {370, 767}, {380, 757}, {390, 747},
		{400, 738}, {410, 728}, {420, 719}, {430, 710}, {440, 701},
		{450, 692}, {460, 684}, {470, 676}, {480, 668}, {490, 660},
		{500, 652}, {510, 645}, {520, 637}, {530, 630}, {540, 623},
		{550, 616}, {560, 610}, {570, 603}, {580, 597}, {590, 591},
		{600, 585}, {610, 579}, {620, 574}, {630, 568}, {640, 563},
		{650, 558}, {660, 552}, {670, 548}, {680, 543}, {690, 538},
		{700, 533}, {710, 529}, {720, 525}, {730, 521}, {740, 517},
		{750, 513}, {760, 509}, {770, 505}, {780, 501}, {790, 498},
		{800, 494}, {810, 491}, {820, 488}, {830, 485}, {840, 482},
		{850, 479}, {860, 476}, {870, 473}, {880, 470}, {890, 467},
		{900, 465}, {910, 462}, {920, 460}, {930, 458}, {940, 455},
		{950, 453}, {960, 451}, {970, 449}, {980, 447}, {990, 444},
		{1000, 442}, {1010, 441}, {1020, 439}, {1030, 437}, {1040, 435},
		{1050, 433}, {1060, 432}, {1070, 430}, {1080, 429}, {1090, 427},
		{1100, 425}, {1110, 424}, {1120, 423}, {1130, 421}, {1140, 420},
		{1150, 419}, {1160, 417}, {1170, 416}, {1180, 415}, {1190, 414},
		{1200, 412}, {1210, 411}, {1220, 410}, {1230, 409}, {1240, 408},
		{1250, 407},
	}

	// QRDSKUAABTMThreshold is the SKUAA board battery table (0.1 degC to mV).
	QRDSKUAABTMThreshold = Table{
		{-400, 1676}, {-390, 1670}, {-380, 1664}, {-370, 1658}, {-360, 1651},
		{-350, 1645}, {-340, 1638}, {-330, 1630}, {-320, 1623}, {-310, 1615},
		{-300, 1607}, {-290, 1599}, {-280, 1590}, {-270, 1582}, {-260, 1573},
		{-250, 1563}, {-240, 1554}, {-230, 1544}, {-220, 1534}, {-210, 1523},
		{-200, 1513}, {-190, 1502}, {-180, 1491}, {-170, 1479}, {-160, 1468},
		{-150, 1456}, {-140, 1444}, {-130, 1432}, {-120, 1419}, {-110, 1406},
		{-100, 1393}, {-90, 1380}, {-80, 1367}, {-70, 1354}, {-60, 1340},
		{-50, 1326}, {-40, 1312}, {-30, 1298}, {-20, 1284}, {-10, 1270},
		{0, 1256}, {10, 1241}, {20, 1227}, {30, 1212}, {40, 1198},
		{50, 1183}, {60, 1168}, {70, 1154}, {80, 1139}, {90, 1125},
		{100, 1110}, {110, 1096}, {120, 1082}, {130, 1067}, {140, 1053},
		{150, 1039}, {160, 1025}, {170, 1011}, {180, 997}, {190, 983},
		{200, 970}, {210, 957}, {220, 943}, {230, 930}, {240, 917},
		{250, 905}, {260, 892}, {270, 880}, {280, 868}, {290, 856},
		{300, 844}, {310, 832}, {320, 821}, {330, 810}, {340, 799},
		{350, 788}, {360, 778}, {370, 767}, {380, 757}, {390, 747},
		{400, 738}, {410, 728}, {420, 719}, {430, 710}, {440, 701},
		{450, 692}, {460, 684}, {470, 676}, {480, 668}, {490, 660},
		{500, 652}, {510, 645}, {520, 637}, {530, 630}, {540, 623},
		{550, 616}, {560, 610}, {570, 603}, {580, 597}, {590, 591},
		{600, 585}, {610, 579}, {620, 574}, {630, 568}, {640, 563},
		{650, 558}, {660, 552}, {670, 548}, {680, 543}, {690, 538},
		{700, 533}, {710, 529}, {720, 525}, {730, 521}, {740, 517},
		{750, 513}, {760, 509}, {770, 505}, {780, 501}, {790, 498},
		{800, 494}, {810, 491}, {820, 488}, {830, 485}, {840, 482},
		{850, 479}, {860, 476}, {870, 473}, {880, 470}, {890, 467},
		{900, 465}, {910, 462}, {920, 460}, {930, 458}, {940, 455},
		{950, 453}, {960, 451}, {970, 449}, {980, 447}, {990, 444},
		{1000, 442}, {1010, 441}, {1020, 439}, {1030, 437}, {1040, 435},
		{1050, 433}, {1060, 432}, {1070, 430}, {1080, 429}, {1090, 427},
		{1100, 425}, {1110, 424}, {1120, 423}, {1130, 421}, {1140, 420},
		{1150, 419}, {1160, 417}, {1170, 416}, {1180, 415}, {1190, 414},
		{1200, 412}, {1210, 411}, {1220, 410}, {1230, 409}, {1240, 408},
		{1250, 407},
	}

	// QRDSKUGBTMThreshold is the SKUG board battery table (0.1 degC to mV).
	QRDSKUGBTMThreshold = Table{
		{-200, 1338}, {-180, 1307}, {-160, 1276}, {-140, 1244}, {-120, 1213},
		{-100, 1182}, {-80, 1151}, {-60, 1121}, {-40, 1092}, {-20, 1063},
		{0, 1035}, {20, 1008}, {40, 982}, {60, 957}, {80, 933},
		{100, 910}, {120, 889}, {140, 868}, {160, 848}, {180, 830},
		{200, 812}, {220, 795}, {240, 780}, {260, 765}, {280, 751},
		{300, 738}, {320, 726}, {340, 714}, {360, 704}, {380, 694},
		{400, 684}, {420, 675}, {440, 667}, {460, 659}, {480, 652},
		{500, 645}, {520, 639}, {540, 633}, {560, 627}, {580, 622},
		{600, 617}, {620, 613}, {640, 608}, {660, 604}, {680, 600},
		{700, 597}, {720, 593}, {740, 590}, {760, 587}, {780, 585},
		{800, 582},
	}

	// Therm100K maps divider voltage in mV to degC for a 100k NTC
	// (104EF/104FB) biased through a 100k pull-up. The table is descending in x.
	Therm100K = Table{
		{1758, -40}, {1742, -35}, {1719, -30}, {1691, -25}, {1654, -20},
		{1608, -15}, {1551, -10}, {1483, -5}, {1404, 0}, {1315, 5},
		{1218, 10}, {1114, 15}, {1007, 20}, {900, 25}, {795, 30},
		{696, 35}, {605, 40}, {522, 45}, {448, 50}, {383, 55},
		{327, 60}, {278, 65}, {237, 70}, {202, 75}, {172, 80},
		{146, 85}, {125, 90}, {107, 95}, {92, 100}, {79, 105},
		{68, 110}, {59, 115}, {51, 120}, {44, 125},
	}

	// Therm150K maps divider voltage in mV to degC for a 100k NTC
	// biased through a 150k pull-up.
	Therm150K = Table{
		{1738, -40}, {1714, -35}, {1682, -30}, {1641, -25}, {1589, -20},
		{1526, -15}, {1451, -10}, {1363, -5}, {1266, 0}, {1159, 5},
		{1048, 10}, {936, 15}, {825, 20}, {720, 25}, {622, 30},
		{533, 35}, {454, 40}, {385, 45}, {326, 50}, {275, 55},
		{232, 60}, {195, 65}, {165, 70}, {139, 75}, {118, 80},
		{100, 85}, {85, 90}, {73, 95}, {62, 100}, {53, 105},
		{46, 110}, {40, 115}, {34, 120}, {30, 125},
	}
)
