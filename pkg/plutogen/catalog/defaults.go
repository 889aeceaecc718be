package catalog

// Defaults returns the built-in repository layout. Every call builds fresh
// trees, so callers may modify the result freely.
func Defaults() Set {
	return Set{
		Parameters: ParameterTree(),
		Procedures: ProcedureTree(),
	}
}

// ParameterTree returns the telecommand and telemetry catalog.
func ParameterTree() Tree {
	return Tree{
		Name:        "parameters",
		Placeholder: ParameterPlaceholder,
		Roots: []Root{
			{
				Name: "SSM",
				Families: []Family{
					{Name: "Telecommands", Kinds: []Kind{{Name: "MIB_TCs", Categories: telecommandCategories()}}},
					{Name: "Telemetry", Kinds: []Kind{{Name: "MIB_TMs", Categories: telemetryCategories()}}},
				},
			},
		},
	}
}

// ProcedureTree returns the sub-procedure catalog.
func ProcedureTree() Tree {
	return Tree{
		Name:        "procedures",
		Placeholder: ProcedurePlaceholder,
		Roots: []Root{
			{
				Name: "SSM",
				Families: []Family{
					{
						Name: "Procedures",
						Kinds: []Kind{
							{Name: "decommissioning_nominal", Categories: decommissioningNominal()},
							{Name: "LEOP_contingency", Categories: leopContingency()},
							{Name: "LEOP_nominal", Categories: leopNominal()},
							{Name: "Routine_contingency", Categories: routineContingency()},
							{Name: "Routine_nominal", Categories: routineNominal()},
							{Name: "TTQ_contingency", Categories: ttqContingency()},
							{Name: "TTQ_nominal", Categories: ttqNominal()},
						},
					},
				},
			},
		},
	}
}

// NanomindTCs_critical precedes NanomindTCs so the longer critical prefixes
// win over the generic M4A0/M4B1 ones.
func telecommandCategories() []Category {
	return []Category{
		{Name: "AggregationDefinitions", Prefixes: []string{"MG_"}},
		{Name: "CCSDSengineHWTC", Prefixes: []string{"CCSDSTC1"}},
		{Name: "FBO", Prefixes: []string{"F1E1"}},
		{Name: "GroundSegment", Prefixes: []string{"G2A0101s"}},
		{Name: "Misc", Prefixes: []string{"CFDPTC0"}},
		{Name: "NanomindTCs_critical", Prefixes: []string{"M4A0B01b", "M4A0B04b", "M4A0E01b", "M4A1301b", "M4A1303b", "M4A1304b", "M4B1601b", "M4B1602b", "M4B1604b", "M4B1704i", "M4B1705i", "M4B1708b"}},
		{Name: "NanomindTCs", Prefixes: []string{"M040", "M4A0", "M4B1", "MAx1"}},
	}
}

func telemetryCategories() []Category {
	return []Category{
		{Name: "ADC", Prefixes: []string{"ADCS", "BUSS1137", "CADC", "GNC_", "MAGN"}},
		{Name: "ADF", Prefixes: []string{"IAC", "BUSS1154"}},
		{Name: "CAM", Prefixes: []string{"CAM"}},
		{Name: "CCS", Prefixes: []string{"CCS", "MF0000"}},
		{Name: "DeviceCheckFlags", Prefixes: []string{"c"}},
		{Name: "DHS", Prefixes: []string{"TM_", "POCK", "PACK", "PP00"}},
		{Name: "EPS", Prefixes: []string{"EPS", "SOL"}},
		{Name: "EXP", Prefixes: []string{"EXPE"}},
		{Name: "GPS", Prefixes: []string{"GPS"}},
		{Name: "OBC", Prefixes: []string{"INIT", "NAN", "OBSW", "RTC", "SW_M", "SWMS", "TIME"}},
		{Name: "ORX", Prefixes: []string{"BUSS1140", "ORX", "BUSS1155"}},
		{Name: "SDR", Prefixes: []string{"BUSS1139", "SDR", "BUSS1156"}},
		{Name: "SEP", Prefixes: []string{"BUSS1138", "SEP", "BUSS1157"}},
		{Name: "SXV", Prefixes: []string{"SBD"}},
		{Name: "UHF", Prefixes: []string{"COM", "UHF"}},
		{Name: "XTX", Prefixes: []string{"XBD"}},
	}
}

func decommissioningNominal() []Category {
	return []Category{
		{Name: "SYS", Prefixes: []string{"DEC_SYS_N100"}},
	}
}

func leopContingency() []Category {
	return []Category{
		{Name: "EPS", Prefixes: []string{"LEOP_EPS_C210"}},
		{Name: "UHF", Prefixes: []string{"LEOP_UHF_C210"}},
	}
}

func leopNominal() []Category {
	return []Category{
		{Name: "ADC", Prefixes: []string{"LEOP_ADC_N100", "LEOP_ADC_N200", "LEOP_ADC_N250", "LEOP_ADC_N300", "LEOP_ADC_N400"}},
		{Name: "ADF", Prefixes: []string{"LEOP_ADF_N100"}},
		{Name: "CAM", Prefixes: []string{"LEOP_CAM_N100"}},
		{Name: "CCS", Prefixes: []string{"LEOP_CCS_N100"}},
		{Name: "DHS", Prefixes: []string{"LEOP_DHS_N200"}},
		{Name: "EPS", Prefixes: []string{"LEOP_EPS_N100", "LEOP_EPS_N200", "LEOP_EPS_N300"}},
		{Name: "EXP", Prefixes: []string{"LEOP_EXP_N100"}},
		{Name: "FIL", Prefixes: []string{"LEOP_FIL_N100"}},
		{Name: "GPS", Prefixes: []string{"LEOP_GPS_N100"}},
		{Name: "OBC", Prefixes: []string{"LEOP_OBC_N100", "LEOP_OBC_N200"}},
		{Name: "ORX", Prefixes: []string{"LEOP_ORX_N100"}},
		{Name: "SDR", Prefixes: []string{"LEOP_SDR_N100"}},
		{Name: "SEP", Prefixes: []string{"LEOP_SEP_N100"}},
		{Name: "SXV", Prefixes: []string{"LEOP_SXV_N100", "LEOP_SXV_N200"}},
		{Name: "SYS", Prefixes: []string{"LEOP_SYS_N200", "LEOP_SYS_N300", "LEOP_SYS_N350"}},
		{Name: "UHF", Prefixes: []string{"LEOP_UHF_N100", "LEOP_UHF_N200"}},
		{Name: "XTX", Prefixes: []string{"LEOP_XTX_N100"}},
	}
}

func routineContingency() []Category {
	return []Category{
		{Name: "ADC", Prefixes: []string{"R_ADC_C120", "R_ADC_C310"}},
		{Name: "CCS", Prefixes: []string{"R_CCS_C130"}},
		{Name: "DHS", Prefixes: []string{"R_DHS_C100", "R_DHS_C110", "R_DHS_C410"}},
		{Name: "EPS", Prefixes: []string{"R_EPS_C110", "R_EPS_C120", "R_EPS_C130", "R_EPS_C150", "R_EPS_C160", "R_EPS_C170", "R_EPS_C210", "R_EPS_C220", "R_EPS_C230", "R_EPS_C310", "R_EPS_C320", "R_EPS_C410", "R_EPS_C420", "R_EPS_C430"}},
		{Name: "FIL", Prefixes: []string{"R_FIL_C200"}},
		{Name: "GPS", Prefixes: []string{"R_GPS_C120", "R_GPS_C210", "R_GPS_C220", "R_GPS_C310"}},
		{Name: "OBC", Prefixes: []string{"R_OBC_C100", "R_OBC_C150", "R_OBC_C220", "R_OBC_C250"}},
		{Name: "SEP", Prefixes: []string{"R_SEP_C220", "R_SEP_C230"}},
		{Name: "SYS", Prefixes: []string{"R_SYS_C110", "R_SYS_C120", "R_SYS_C210", "R_SYS_C220", "R_SYS_C240", "R_SYS_C310", "R_SYS_C320", "R_SYS_C410"}},
		{Name: "UHF", Prefixes: []string{"R_UHF_C110", "R_UHF_C120", "R_UHF_C210", "R_UHF_C220", "R_UHF_C410", "R_UHF_C510"}},
	}
}

func routineNominal() []Category {
	return []Category{
		{Name: "ADC", Prefixes: []string{"R_ADC_N110", "R_ADC_N120", "R_ADC_N210", "R_ADC_N220", "R_ADC_N230", "R_ADC_N240", "R_ADC_N310", "R_ADC_N320", "R_ADC_N510", "R_ADC_N520"}},
		{Name: "ADF", Prefixes: []string{"R_ADF_N110", "R_ADF_N180", "R_ADF_N210", "R_ADF_N220", "R_ADF_N230", "R_ADF_N235", "R_ADF_N240", "R_ADF_N250", "R_ADF_N260", "R_ADF_N270", "R_ADF_N280", "R_ADF_N285", "R_ADF_N350", "R_ADF_N610"}},
		{Name: "CAM", Prefixes: []string{"R_CAM_N110", "R_CAM_N180", "R_CAM_N210", "R_CAM_N220", "R_CAM_N350", "R_CAM_N610"}},
		{Name: "CCS", Prefixes: []string{"R_CCS_N110", "R_CCS_N180", "R_CCS_N210", "R_CCS_N220", "R_CCS_N225", "R_CCS_N230", "R_CCS_N240", "R_CCS_N350", "R_CCS_N410", "R_CCS_N420", "R_CCS_N425", "R_CCS_N430", "R_CCS_N450", "R_CCS_N460", "R_CCS_N610"}},
		{Name: "DHS", Prefixes: []string{"R_DHS_N110", "R_DHS_N210", "R_DHS_N215", "R_DHS_N410", "R_DHS_N420", "R_DHS_N425", "R_DHS_N450", "R_DHS_N510", "R_DHS_N520"}},
		{Name: "EPS", Prefixes: []string{"R_EPS_N110", "R_EPS_N112", "R_EPS_N120", "R_EPS_N122", "R_EPS_N125", "R_EPS_N127", "R_EPS_N130", "R_EPS_N132", "R_EPS_N135", "R_EPS_N137", "R_EPS_N140", "R_EPS_N150", "R_EPS_N160", "R_EPS_N180", "R_EPS_N350", "R_EPS_N352", "R_EPS_N510"}},
		{Name: "EXP", Prefixes: []string{"R_EXP_N110", "R_EXP_N120", "R_EXP_N130", "R_EXP_N210", "R_EXP_N220", "R_EXP_N230", "R_EXP_N310", "R_EXP_N320"}},
		{Name: "FIL", Prefixes: []string{"R_FIL_N110", "R_FIL_N150", "R_FIL_N210", "R_FIL_N220", "R_FIL_N310", "R_FIL_N320", "R_FIL_N330", "R_FIL_N340"}},
		{Name: "GPS", Prefixes: []string{"R_GPS_N110", "R_GPS_N120", "R_GPS_N130", "R_GPS_N210", "R_GPS_N220", "R_GPS_N510", "R_GPS_N610"}},
		{Name: "OBC", Prefixes: []string{"R_OBC_N110", "R_OBC_N150", "R_OBC_N180", "R_OBC_N210", "R_OBC_N350", "R_OBC_N420", "R_OBC_N425", "R_OBC_N510", "R_OBC_N522", "R_OBC_N525", "R_OBC_N527", "R_OBC_N550", "R_OBC_N555", "R_OBC_N558", "R_OBC_N560", "R_OBC_N570"}},
		{Name: "ORX", Prefixes: []string{"R_ORX_N110", "R_ORX_N180", "R_ORX_N210", "R_ORX_N220", "R_ORX_N350", "R_ORX_N610"}},
		{Name: "SDR", Prefixes: []string{"R_SDR_N110", "R_SDR_N180", "R_SDR_N210", "R_SDR_N220", "R_SDR_N350", "R_SDR_N610"}},
		{Name: "SEP", Prefixes: []string{"R_SEP_N110", "R_SEP_N150", "R_SEP_N180", "R_SEP_N210", "R_SEP_N215", "R_SEP_N220", "R_SEP_N230", "R_SEP_N350", "R_SEP_N410", "R_SEP_N450"}},
		{Name: "SXV", Prefixes: []string{"R_SXV_N110", "R_SXV_N180", "R_SXV_N210", "R_SXV_N220", "R_SXV_N230", "R_SXV_N240", "R_SXV_N350"}},
		{Name: "SYS", Prefixes: []string{"R_SYS_N100", "R_SYS_N120", "R_SYS_N180", "R_SYS_N210", "R_SYS_N220", "R_SYS_N230", "R_SYS_N250", "R_SYS_N260", "R_SYS_N270", "R_SYS_N310", "R_SYS_N315", "R_SYS_N320", "R_SYS_N325", "R_SYS_N330", "R_SYS_N335", "R_SYS_N337", "R_SYS_N340", "R_SYS_N350"}},
		{Name: "TTQ", Prefixes: []string{"R_TTQ_N110", "R_TTQ_N120"}},
		{Name: "UHF", Prefixes: []string{"R_UHF_N110", "R_UHF_N180", "R_UHF_N350", "R_UHF_N352"}},
		{Name: "XTX", Prefixes: []string{"R_XTX_N110", "R_XTX_N180", "R_XTX_N210", "R_XTX_N220", "R_XTX_N230", "R_XTX_N240", "R_XTX_N350", "R_XTX_N610"}},
	}
}

func ttqContingency() []Category {
	return []Category{
		{Name: "ADC", Prefixes: []string{"TT_ADC_C310"}},
		{Name: "GPS", Prefixes: []string{"TT_GPS_C120"}},
		{Name: "UHF", Prefixes: []string{"TT_UHF_C210"}},
	}
}

func ttqNominal() []Category {
	return []Category{
		{Name: "ADC", Prefixes: []string{"TT_ADC_N110", "TT_ADC_N120", "TT_ADC_N210", "TT_ADC_N220", "TT_ADC_N230", "TT_ADC_N240", "TT_ADC_N310", "TT_ADC_N520"}},
		{Name: "ADF", Prefixes: []string{"TT_ADF_N110", "TT_ADF_N180", "TT_ADF_N210", "TT_ADF_N220", "TT_ADF_N230", "TT_ADF_N235", "TT_ADF_N240", "TT_ADF_N250", "TT_ADF_N260", "TT_ADF_N270", "TT_ADF_N280", "TT_ADF_N285"}},
		{Name: "CAM", Prefixes: []string{"TT_CAM_N110", "TT_CAM_N180", "TT_CAM_N210", "TT_CAM_N220"}},
		{Name: "CCS", Prefixes: []string{"TT_CCS_N110", "TT_CCS_N180", "TT_CCS_N230", "TT_CCS_N240", "TT_CCS_N410", "TT_CCS_N430"}},
		{Name: "DHS", Prefixes: []string{"TT_DHS_N110", "TT_DHS_N210", "TT_DHS_N215", "TT_DHS_N410", "TT_DHS_N420", "TT_DHS_N425", "TT_DHS_N450"}},
		{Name: "EPS", Prefixes: []string{"TT_EPS_N110", "TT_EPS_N112", "TT_EPS_N120", "TT_EPS_N122", "TT_EPS_N125", "TT_EPS_N127", "TT_EPS_N130", "TT_EPS_N132", "TT_EPS_N135", "TT_EPS_N137", "TT_EPS_N140", "TT_EPS_N150", "TT_EPS_N160", "TT_EPS_N180", "TT_EPS_N510"}},
		{Name: "EXP", Prefixes: []string{"TT_EXP_N310", "TT_EXP_N320"}},
		{Name: "GPS", Prefixes: []string{"TT_GPS_N110", "TT_GPS_N120", "TT_GPS_N130", "TT_GPS_N210", "TT_GPS_N220", "TT_GPS_N510"}},
		{Name: "OBC", Prefixes: []string{"TT_OBC_N110", "TT_OBC_N180", "TT_OBC_N420", "TT_OBC_N425", "TT_OBC_N522", "TT_OBC_N527"}},
		{Name: "ORX", Prefixes: []string{"TT_ORX_N110", "TT_ORX_N180", "TT_ORX_N210", "TT_ORX_N220"}},
		{Name: "SDR", Prefixes: []string{"TT_SDR_N110", "TT_SDR_N180", "TT_SDR_N210", "TT_SDR_N220"}},
		{Name: "SEP", Prefixes: []string{"TT_SEP_N110", "TT_SEP_N180", "TT_SEP_N210", "TT_SEP_N215", "TT_SEP_N220", "TT_SEP_N230", "TT_SEP_N450"}},
		{Name: "SXV", Prefixes: []string{"TT_SXV_N110", "TT_SXV_N180", "TT_SXV_N210", "TT_SXV_N220", "TT_SXV_N230", "TT_SXV_N240"}},
		{Name: "SYS", Prefixes: []string{"TT_SYS_N100", "TT_SYS_N120", "TT_SYS_N180", "TT_SYS_N210", "TT_SYS_N220", "TT_SYS_N230", "TT_SYS_N260", "TT_SYS_N270", "TT_SYS_N310", "TT_SYS_N315", "TT_SYS_N320", "TT_SYS_N325", "TT_SYS_N330", "TT_SYS_N335", "TT_SYS_N337", "TT_SYS_N340"}},
		{Name: "UHF", Prefixes: []string{"TT_UHF_N110", "TT_UHF_N180"}},
		{Name: "XTX", Prefixes: []string{"TT_XTX_N110", "TT_XTX_N180", "TT_XTX_N210", "TT_XTX_N220", "TT_XTX_N230", "TT_XTX_N240"}},
	}
}
