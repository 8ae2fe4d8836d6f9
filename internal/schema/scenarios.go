package schema

// Flat scenario tables: module lifecycle, memory, scheduler, network
// receive, power management, and synchronization primitives.

func defaultModuleLifecycle() []Scenario {
	return []Scenario{
		{
			Name:        "insmod",
			Description: "模块加载",
			CallChain: []string{
				"sys_init_module / sys_finit_module (kernel/module.c)",
				"load_module",
				"do_init_module",
				"mod->init() = module_init 指定的函数",
			},
			Note: "insmod 返回时，module_init 已执行完毕，但 probe 可能还没调用",
		},
		{
			Name:        "rmmod",
			Description: "模块卸载",
			CallChain: []string{
				"sys_delete_module (kernel/module.c)",
				"mod->exit() = module_exit 指定的函数",
				"free_module",
			},
			Note: "rmmod 会先调用 disconnect/remove（如果设备存在），再调用 exit",
		},
	}
}

func defaultMemoryOperations() []Scenario {
	return []Scenario{
		{
			Name:        "kmalloc",
			Description: "内核小内存分配",
			Context:     "进程上下文（GFP_KERNEL）或中断上下文（GFP_ATOMIC）",
			CallChain: []string{
				"kmalloc (include/linux/slab.h)",
				"__kmalloc",
				"slab_alloc / slub_alloc",
				"从 slab 缓存分配",
			},
		},
		{
			Name:        "vmalloc",
			Description: "虚拟连续内存分配",
			Context:     "只能在进程上下文，可能睡眠",
			CallChain: []string{
				"vmalloc (mm/vmalloc.c)",
				"__vmalloc_node",
				"分配多个物理页",
				"映射到虚拟地址空间",
			},
		},
		{
			Name:        "page_fault",
			Description: "缺页中断",
			Context:     "中断上下文转进程上下文",
			CallChain: []string{
				"CPU 缺页异常",
				"do_page_fault (arch/x86/mm/fault.c)",
				"handle_mm_fault (mm/memory.c)",
				"handle_pte_fault",
				"do_anonymous_page / do_fault",
				"分配物理页并映射",
			},
		},
		{
			Name:        "dma_alloc",
			Description: "DMA 内存分配",
			Context:     "进程上下文",
			CallChain: []string{
				"dma_alloc_coherent (kernel/dma/mapping.c)",
				"dma_direct_alloc / iommu_dma_alloc",
				"分配物理连续内存",
				"返回物理地址和虚拟地址",
			},
		},
	}
}

func defaultSchedulerOperations() []Scenario {
	return []Scenario{
		{
			Name:        "timer_interrupt",
			Description: "时钟中断触发调度检查",
			CallChain: []string{
				"时钟中断 (arch/x86/kernel/time.c)",
				"tick_handle_periodic / tick_nohz_handler",
				"update_process_times",
				"scheduler_tick (kernel/sched/core.c)",
				"curr->sched_class->task_tick()",
				"设置 TIF_NEED_RESCHED 标志",
			},
		},
		{
			Name:        "voluntary_schedule",
			Description: "主动调度（睡眠等待）",
			CallChain: []string{
				"schedule() (kernel/sched/core.c)",
				"__schedule",
				"pick_next_task",
				"context_switch",
				"switch_to (arch/x86/kernel/process.c)",
			},
		},
		{
			Name:        "wait_event",
			Description: "等待事件",
			CallChain: []string{
				"wait_event / wait_event_interruptible",
				"prepare_to_wait",
				"schedule()",
				"被唤醒后 finish_wait",
			},
		},
		{
			Name:        "wake_up",
			Description: "唤醒进程",
			CallChain: []string{
				"wake_up / wake_up_interruptible",
				"__wake_up_common",
				"try_to_wake_up (kernel/sched/core.c)",
				"ttwu_queue",
				"设置进程为 TASK_RUNNING",
			},
		},
	}
}

func defaultNetworkRXFlows() []Scenario {
	return []Scenario{
		{
			Name:        "traditional_irq",
			Description: "传统中断收包",
			CallChain: []string{
				"网卡中断",
				"do_IRQ (arch/x86/kernel/irq.c)",
				"handle_irq",
				"驱动中断处理函数",
				"netif_rx (net/core/dev.c)",
				"enqueue_to_backlog",
				"NET_RX_SOFTIRQ 软中断",
				"net_rx_action",
				"协议栈处理",
			},
		},
		{
			Name:        "napi_poll",
			Description: "NAPI 轮询收包（高性能）",
			CallChain: []string{
				"网卡中断",
				"驱动中断处理函数",
				"napi_schedule (include/linux/netdevice.h)",
				"禁用中断",
				"NET_RX_SOFTIRQ 软中断",
				"net_rx_action (net/core/dev.c)",
				"napi_poll",
				"驱动 poll 函数",
				"napi_gro_receive",
				"netif_receive_skb",
				"协议栈处理",
			},
		},
	}
}

func defaultPowerManagement() []Scenario {
	return []Scenario{
		{
			Name:        "system_suspend",
			Description: "系统休眠",
			CallChain: []string{
				"echo mem > /sys/power/state",
				"pm_suspend (kernel/power/suspend.c)",
				"enter_state",
				"suspend_prepare",
				"suspend_devices_and_enter",
				"dpm_suspend_start",
				"dpm_suspend",
				"遍历设备调用 dev->driver->pm->suspend()",
			},
		},
		{
			Name:        "system_resume",
			Description: "系统唤醒",
			CallChain: []string{
				"唤醒事件",
				"dpm_resume",
				"遍历设备调用 dev->driver->pm->resume()",
				"resume_finish",
			},
		},
		{
			Name:        "runtime_suspend",
			Description: "运行时挂起（单个设备）",
			CallChain: []string{
				"pm_runtime_put (drivers/base/power/runtime.c)",
				"rpm_idle",
				"rpm_suspend",
				"dev->driver->pm->runtime_suspend()",
			},
		},
		{
			Name:        "runtime_resume",
			Description: "运行时恢复（单个设备）",
			CallChain: []string{
				"pm_runtime_get (drivers/base/power/runtime.c)",
				"rpm_resume",
				"dev->driver->pm->runtime_resume()",
			},
		},
	}
}

func defaultSyncPrimitives() []SyncPrimitive {
	return []SyncPrimitive{
		{
			Name:        "mutex",
			Description: "互斥锁（可睡眠）",
			LockFuncs:   []string{"mutex_lock", "mutex_lock_interruptible"},
			UnlockFuncs: []string{"mutex_unlock"},
			Context:     "只能在进程上下文",
			ContendedChain: []string{
				"mutex_lock (kernel/locking/mutex.c)",
				"__mutex_lock",
				"mutex_optimistic_spin (尝试自旋)",
				"失败则 schedule_preempt_disabled",
				"进程睡眠",
				"持有者 unlock 后被唤醒",
			},
		},
		{
			Name:        "spinlock",
			Description: "自旋锁（不可睡眠）",
			LockFuncs:   []string{"spin_lock", "spin_lock_irqsave", "spin_lock_bh"},
			UnlockFuncs: []string{"spin_unlock", "spin_unlock_irqrestore", "spin_unlock_bh"},
			Context:     "任何上下文",
			Note:        "spin_lock_irqsave 用于中断上下文",
		},
		{
			Name:        "rwlock",
			Description: "读写锁",
			LockFuncs:   []string{"read_lock", "write_lock"},
			UnlockFuncs: []string{"read_unlock", "write_unlock"},
			Context:     "任何上下文（如用 _irqsave 变体）",
		},
		{
			Name:        "semaphore",
			Description: "信号量（可睡眠）",
			LockFuncs:   []string{"down", "down_interruptible"},
			UnlockFuncs: []string{"up"},
			Context:     "进程上下文",
		},
	}
}
