// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import "sync"

// exec and classID keep the default tables readable
func exec(match, replace string) Rule {
	return Rule{Match: match, Replace: replace, Category: CategoryExecutable}
}

func classID(match, replace string) Rule {
	return Rule{Match: match, Replace: replace, Category: CategoryClassID}
}

// 🗃️ defaultRules is the built-in legacy-to-canonical table. Order matters:
// within a category the first matching rule wins, so namespace-qualified
// patterns precede the comma-bearing assembly-qualified catch-alls for the
// same task family. The trailing generation ordinal (.2, .3, ...) on ProgID
// shapes is a wildcard digit run.
var defaultRules = []Rule{
	// Executable types: GUID form of the pipeline task
	exec(`\{5918251B-2970-45A4-AB5F-01C3C588FE5A\}`, "Microsoft.Pipeline"),

	// Executable types: short ProgID shapes with optional generation suffix
	exec(`SSIS\.Pipeline(\.\d+)?`, "Microsoft.Pipeline"),
	exec(`SSIS\.ExecutePackageTask(\.\d+)?`, "Microsoft.ExecutePackageTask"),
	exec(`SSIS\.Package(\.\d+)?`, "Microsoft.Package"),

	// Executable types: assembly-qualified CLR names. The pattern keys on the
	// task's assembly namespace, which no canonical short name contains.
	exec(`.*Microsoft\.SqlServer\.ExecProcTask.*`, "Microsoft.ExecuteProcess"),
	exec(`.*Microsoft\.SqlServer\.SQLTask.*`, "Microsoft.ExecuteSQLTask"),
	exec(`.*Microsoft\.SqlServer\.ExpressionTask.*`, "Microsoft.ExpressionTask"),
	exec(`.*Microsoft\.SqlServer\.FileSystemTask.*`, "Microsoft.FileSystemTask"),
	exec(`.*Microsoft\.SqlServer\.ScriptTask.*`, "Microsoft.ScriptTask"),
	exec(`.*Microsoft\.SqlServer\.TransferDatabasesTask.*`, "Microsoft.TransferDatabaseTask"),

	// Executable types: maintenance plan tasks. The namespace-qualified shape
	// first, then the assembly-qualified shape. Both stay disjoint from the
	// canonical Microsoft.DbMaintenance* names, which carry neither the
	// Microsoft.SqlServer prefix nor an assembly suffix.
	exec(`Microsoft\.SqlServer\.[\w.]*DbMaintenanceReindexTask`, "Microsoft.DbMaintenanceReindexTask"),
	exec(`.*DbMaintenanceReindexTask.*,.*`, "Microsoft.DbMaintenanceReindexTask"),
	exec(`Microsoft\.SqlServer\.[\w.]*DbMaintenanceShrinkTask`, "Microsoft.DbMaintenanceShrinkTask"),
	exec(`.*DbMaintenanceShrinkTask.*,.*`, "Microsoft.DbMaintenanceShrinkTask"),
	exec(`Microsoft\.SqlServer\.[\w.]*DbMaintenanceTSQLExecuteTask`, "Microsoft.DbMaintenanceTSQLExecuteTask"),
	exec(`.*DbMaintenanceTSQLExecuteTask.*,.*`, "Microsoft.DbMaintenanceTSQLExecuteTask"),
	exec(`Microsoft\.SqlServer\.[\w.]*DbMaintenanceUpdateStatisticsTask`, "Microsoft.DbMaintenanceUpdateStatisticsTask"),
	exec(`.*DbMaintenanceUpdateStatisticsTask.*,.*`, "Microsoft.DbMaintenanceUpdateStatisticsTask"),

	// Component class IDs: legacy ProgID shapes
	classID(`DTS\.ManagedComponentWrapper\.\d+`, "Microsoft.ManagedComponentWrapper"),
	classID(`DTSAdapter\.ExcelDestination\.\d+`, "Microsoft.ExcelDestination"),
	classID(`DTSAdapter\.OLEDBDestination\.\d+`, "Microsoft.OLEDBDestination"),
	classID(`DTSAdapter\.ExcelSource\.\d+`, "Microsoft.ExcelSource"),
	classID(`DTSAdapter\.FlatFileSource\.\d+`, "Microsoft.FlatFileSource"),
	classID(`DTSAdapter\.OLEDBSource\.\d+`, "Microsoft.OLEDBSource"),
	classID(`DTSTransform\.Aggregate\.\d+`, "Microsoft.Aggregate"),
	classID(`DTSTransform\.ConditionalSplit\.\d+`, "Microsoft.ConditionalSplit"),
	classID(`DTSTransform\.DataConvert\.\d+`, "Microsoft.DataConvert"),
	classID(`DTSTransform\.DerivedColumn\.\d+`, "Microsoft.DerivedColumn"),
	classID(`DTSTransform\.Lookup\.\d+`, "Microsoft.Lookup"),
	classID(`DTSTransform\.Merge\.\d+`, "Microsoft.Merge"),
	classID(`DTSTransform\.MergeJoin\.\d+`, "Microsoft.MergeJoin"),
	classID(`DTSTransform\.Multicast\.\d+`, "Microsoft.Multicast"),
	classID(`DTSTransform\.OLEDBCommand\.\d+`, "Microsoft.OLEDBCommand"),
	classID(`DTSTransform\.SCD\.\d+`, "Microsoft.SlowlyChangingDimension"),
	classID(`DTSTransform\.Sort\.\d+`, "Microsoft.Sort"),
	classID(`DTSTransform\.UnionAll\.\d+`, "Microsoft.UnionAll"),

	// Component class IDs: GUID shapes (transformations)
	classID(`\{5B201335-B360-485C-BB93-75C34E09B3D3\}`, "Microsoft.Aggregate"),
	classID(`\{7F88F654-4E20-4D14-84F4-AF9C925D3087\}`, "Microsoft.ConditionalSplit"),
	classID(`\{62B1106C-7DB8-4EC8-ADD6-4C664DFFC54A\}`, "Microsoft.DataConvert"),
	classID(`\{49928E82-9C4E-49F0-AABE-3812B82707EC\}`, "Microsoft.DerivedColumn"),
	classID(`\{671046B0-AA63-4C9F-90E4-C06E0B710CE3\}`, "Microsoft.Lookup"),
	classID(`\{36E0E750-2510-4776-AA6E-17EAE84FD63E\}`, "Microsoft.Merge"),
	classID(`\{14D43A4F-D7BD-489D-829E-6DE35750CFE4\}`, "Microsoft.MergeJoin"),
	classID(`\{EC139FBC-694E-490B-8EA7-35690FB0F445\}`, "Microsoft.Multicast"),
	classID(`\{93FFEC66-CBC8-4C7F-9C6A-CB1C17A7567D\}`, "Microsoft.OLEDBCommand"),
	classID(`\{25BBB0C5-369B-4303-B3DF-D0DC741DEE58\}`, "Microsoft.SlowlyChangingDimension"),
	classID(`\{5B1A3FF5-D366-4D75-AD1F-F19A36FCBEDB\}`, "Microsoft.Sort"),
	classID(`\{B594E9A8-4351-4939-891C-CFE1AB93E925\}`, "Microsoft.UnionAll"),
	classID(`\{874F7595-FB5F-40FF-96AF-FBFF8250E3EF\}`, "Microsoft.ManagedComponentWrapper"),

	// Component class IDs: GUID shapes (destinations)
	classID(`\{4ADA7EAA-136C-4215-8098-D7A7C27FC0D1\}`, "Microsoft.OLEDBDestination"),
	classID(`\{8DA75FED-1B7C-407D-B2AD-2B24209CCCA4\}`, "Microsoft.FlatFileDestination"),
	classID(`\{C457FD7E-CE98-4C4B-AEFE-F3AE0044F181\}`, "Microsoft.RecordsetDestination"),

	// Component class IDs: GUID shapes (sources), including the alternative
	// GUIDs some designer versions emit for the same component
	classID(`\{165A526D-D5DE-47FF-96A6-F8274C19826B\}`, "Microsoft.OLEDBSource"),
	classID(`\{8C084929-27D1-479F-9641-ABB7CDADF1AC\}`, "Microsoft.ExcelSource"),
	classID(`\{D23FD76B-F51D-420F-BBCB-19CBF6AC1AB4\}`, "Microsoft.FlatFileSource"),
	classID(`\{5918251B-2970-45A4-AB5F-01C3C588FE5A\}`, "Microsoft.OLEDBSource"),
	classID(`\{98F16A65-E02F-4B0F-87D4-C217EA074619\}`, "Microsoft.ExcelSource"),
	classID(`\{BD06A22E-BC69-4AF7-A69B-C44C2EF684BB\}`, "Microsoft.FlatFileSource"),
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// 🏭 Default returns the built-in catalog. The built-in table is part of the
// program, so a validation failure here is a defect and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(defaultRules)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
